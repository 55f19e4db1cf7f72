package export

import (
	"fmt"
	"gridmap/render"
	"strings"
)

// ANSIExporter prints each cell as two spaces on a 24-bit background
type ANSIExporter struct {
	renderer *render.Renderer
}

// NewANSIExporter creates a new terminal colour exporter
func NewANSIExporter(r *render.Renderer) *ANSIExporter {
	return &ANSIExporter{renderer: r}
}

// Export renders the scene one pixel per cell and converts the pixels to
// escape sequences.
func (e *ANSIExporter) Export(scene render.Scene) ([]byte, error) {
	scene.CellSize = 1
	surface, err := e.renderer.RenderImage(scene)
	if err != nil {
		return nil, fmt.Errorf("failed to render map: %w", err)
	}

	b := surface.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := render.RGB255(surface.At(x, y))
			fmt.Fprintf(&sb, "\033[48;2;%d;%d;%dm  ", r, g, bl)
		}
		sb.WriteString("\033[0m\n")
	}
	return []byte(sb.String()), nil
}

// GetFileExtension returns the recommended file extension
func (e *ANSIExporter) GetFileExtension() string {
	return ".ans"
}

// GetFormatName returns the format name
func (e *ANSIExporter) GetFormatName() string {
	return "ANSI colour blocks"
}
