package render

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Surface is the drawing capability the renderer needs. Fill paints a
// rectangle, compositing translucent colours over what is already there.
type Surface interface {
	Bounds() image.Rectangle
	Fill(r image.Rectangle, c color.Color)
}

// ImageSurface is a raster Surface backed by a gg context.
type ImageSurface struct {
	dc *gg.Context
}

// NewImageSurface creates a surface of the given pixel size, cleared to bg.
func NewImageSurface(width, height int, bg color.Color) *ImageSurface {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &ImageSurface{dc: dc}
}

// Bounds implements Surface.
func (s *ImageSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dc.Width(), s.dc.Height())
}

// Fill implements Surface.
func (s *ImageSurface) Fill(r image.Rectangle, c color.Color) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	s.dc.Fill()
}

// Clear repaints the whole surface with c.
func (s *ImageSurface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

// At returns the colour of a single pixel.
func (s *ImageSurface) At(x, y int) color.Color {
	return s.dc.Image().At(x, y)
}

// Image returns the rendered image.
func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the surface as a PNG image.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}
