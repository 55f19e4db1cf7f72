package export

import (
	"bytes"
	"fmt"
	"gridmap/render"
)

// PNGExporter rasterises a scene, overlay included
type PNGExporter struct {
	renderer *render.Renderer
}

// NewPNGExporter creates a new PNG exporter
func NewPNGExporter(r *render.Renderer) *PNGExporter {
	return &PNGExporter{renderer: r}
}

// Export renders the scene and encodes it as PNG
func (e *PNGExporter) Export(scene render.Scene) ([]byte, error) {
	surface, err := e.renderer.RenderImage(scene)
	if err != nil {
		return nil, fmt.Errorf("failed to render map: %w", err)
	}

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// GetFileExtension returns the recommended file extension
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name
func (e *PNGExporter) GetFormatName() string {
	return "PNG image"
}
