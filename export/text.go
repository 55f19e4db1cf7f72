package export

import (
	"fmt"
	"gridmap/grid"
	"gridmap/render"
	"strings"
)

// ToText serializes a grid row by row, one symbol per cell, each row
// terminated by a newline.
func ToText(g *grid.Grid) string {
	w, h := g.Size()

	var sb strings.Builder
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for _, c := range g.Row(y) {
			sb.WriteRune(c.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TextExporter exports the map text format
type TextExporter struct{}

// NewTextExporter creates a new map text exporter
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export writes the grid as map text. Overlays are not part of the format.
func (e *TextExporter) Export(scene render.Scene) ([]byte, error) {
	if scene.Grid == nil {
		return nil, fmt.Errorf("grid is nil")
	}
	return []byte(ToText(scene.Grid)), nil
}

// GetFileExtension returns the recommended file extension
func (e *TextExporter) GetFileExtension() string {
	return ".txt"
}

// GetFormatName returns the format name
func (e *TextExporter) GetFormatName() string {
	return "Map text"
}
