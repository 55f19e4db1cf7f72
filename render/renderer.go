package render

import (
	"errors"
	"gridmap/core"
	"gridmap/grid"
	"image"
)

// ErrEmptyScene is returned when there is no grid to draw.
var ErrEmptyScene = errors.New("nothing to render")

// Scene is everything one frame shows.
type Scene struct {
	Grid     *grid.Grid
	Overlay  core.Overlay
	CellSize int
}

// PixelSize returns the size of the area the scene covers.
func (s Scene) PixelSize() (width, height int) {
	if s.Grid == nil {
		return 0, 0
	}
	w, h := s.Grid.Size()
	return w * s.CellSize, h * s.CellSize
}

// CellRect returns the square covered by the cell at p.
func (s Scene) CellRect(p core.Point) image.Rectangle {
	x, y := p.X*s.CellSize, p.Y*s.CellSize
	return image.Rect(x, y, x+s.CellSize, y+s.CellSize)
}

// Renderer paints a Scene onto a Surface. It only reads the scene.
type Renderer struct {
	palette Palette
}

// NewRenderer creates a renderer with the default palette.
func NewRenderer() *Renderer {
	return &Renderer{palette: DefaultPalette}
}

// SetPalette replaces the colours used for drawing.
func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
}

// Palette returns the colours used for drawing.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// Render draws, back to front: cell fills, visited tint, path tint, the
// start highlight and the goal highlight.
func (r *Renderer) Render(s Surface, scene Scene) error {
	if scene.Grid == nil || scene.CellSize <= 0 {
		return ErrEmptyScene
	}

	scene.Grid.Each(func(p core.Point, c core.Cell) {
		s.Fill(scene.CellRect(p), r.palette.CellColor(c))
	})

	for _, p := range scene.Overlay.Visited {
		if scene.Grid.InBounds(p) {
			s.Fill(scene.CellRect(p), r.palette.Visited)
		}
	}
	for _, p := range scene.Overlay.Path {
		if scene.Grid.InBounds(p) {
			s.Fill(scene.CellRect(p), r.palette.Path)
		}
	}

	if p, ok := scene.Grid.Start(); ok {
		s.Fill(scene.CellRect(p), r.palette.Start)
	}
	if p, ok := scene.Grid.Goal(); ok {
		s.Fill(scene.CellRect(p), r.palette.Goal)
	}
	return nil
}

// RenderImage draws the scene onto a new image surface sized to fit it.
func (r *Renderer) RenderImage(scene Scene) (*ImageSurface, error) {
	w, h := scene.PixelSize()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyScene
	}
	surface := NewImageSurface(w, h, r.palette.Background)
	if err := r.Render(surface, scene); err != nil {
		return nil, err
	}
	return surface, nil
}
