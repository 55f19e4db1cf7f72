// Package export converts map scenes to text and image formats
package export

import (
	"fmt"
	"gridmap/render"
)

// Format represents an export format
type Format string

const (
	// FormatText exports the map text understood by the search service
	FormatText Format = "text"
	// FormatPNG exports a raster image of the map and its overlay
	FormatPNG Format = "png"
	// FormatANSI exports 24-bit colour blocks for printing to a terminal
	FormatANSI Format = "ansi"
)

// Exporter interface for different export formats
type Exporter interface {
	// Export converts a scene to the target format
	Export(scene render.Scene) ([]byte, error)
	// GetFileExtension returns the recommended file extension for this format
	GetFileExtension() string
	// GetFormatName returns a human-readable name for this format
	GetFormatName() string
}

// NewExporter creates an exporter for the specified format
func NewExporter(format Format) (Exporter, error) {
	return NewExporterWith(format, render.NewRenderer())
}

// NewExporterWith creates an exporter whose image formats draw with r
func NewExporterWith(format Format, r *render.Renderer) (Exporter, error) {
	switch format {
	case FormatText:
		return NewTextExporter(), nil
	case FormatPNG:
		return NewPNGExporter(r), nil
	case FormatANSI:
		return NewANSIExporter(r), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "txt", "map":
		return FormatText, nil
	case "png", "image":
		return FormatPNG, nil
	case "ansi", "term", "terminal":
		return FormatANSI, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// GetAvailableFormats returns a list of all available export formats
func GetAvailableFormats() []Format {
	return []Format{
		FormatText,
		FormatPNG,
		FormatANSI,
	}
}
