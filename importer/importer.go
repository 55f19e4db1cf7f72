// Package importer parses map text into grids.
package importer

import (
	"fmt"
	"gridmap/core"
	"gridmap/grid"
	"io"
	"strings"
)

// MalformedMapError reports map text that cannot be decoded.
// Line and Column are 1-based; Column is 0 for whole-line problems.
type MalformedMapError struct {
	Line   int
	Column int
	Char   rune
	Reason string
}

func (e *MalformedMapError) Error() string {
	switch {
	case e.Column > 0:
		return fmt.Sprintf("malformed map: line %d column %d: invalid character %q", e.Line, e.Column, e.Char)
	case e.Line > 0:
		return fmt.Sprintf("malformed map: line %d: %s", e.Line, e.Reason)
	default:
		return "malformed map: " + e.Reason
	}
}

// Importer converts content into a grid
type Importer interface {
	// Import converts the input content into a grid
	Import(content string) (*grid.Grid, error)
	// GetFormatName returns the human-readable name of the format
	GetFormatName() string
	// GetFileExtensions returns common file extensions for this format
	GetFileExtensions() []string
}

// TextImporter reads the line-oriented map format: one character per
// cell, '1' open, 'X' wall, 'S' start, 'G' goal, '2'..'9' weighted.
type TextImporter struct{}

// NewTextImporter creates a new map text importer
func NewTextImporter() *TextImporter {
	return &TextImporter{}
}

// Import implements Importer.
func (i *TextImporter) Import(content string) (*grid.Grid, error) {
	return FromText(content)
}

// GetFormatName returns the format name
func (i *TextImporter) GetFormatName() string {
	return "Map text"
}

// GetFileExtensions returns common file extensions for this format
func (i *TextImporter) GetFileExtensions() []string {
	return []string{".txt", ".map"}
}

// FromText decodes map text. Width is the length of the first line and
// height the number of non-empty lines. Start and Goal cells are not
// counted here: zero or several of each are accepted and left for
// grid.Census to report.
func FromText(text string) (*grid.Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var rows [][]core.Cell
	width := -1
	for n, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}

		runes := []rune(line)
		if width < 0 {
			width = len(runes)
		} else if len(runes) != width {
			return nil, &MalformedMapError{
				Line:   n + 1,
				Reason: fmt.Sprintf("row has %d cells, expected %d", len(runes), width),
			}
		}

		row := make([]core.Cell, len(runes))
		for x, r := range runes {
			cell, ok := core.CellFromSymbol(r)
			if !ok {
				return nil, &MalformedMapError{Line: n + 1, Column: x + 1, Char: r}
			}
			row[x] = cell
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, &MalformedMapError{Reason: "no rows"}
	}

	return grid.FromCells(rows)
}

// FromReader reads all of r and decodes it with FromText.
func FromReader(r io.Reader) (*grid.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	return FromText(string(data))
}
