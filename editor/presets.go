package editor

import (
	"errors"
	"fmt"
	"gridmap/grid"
	"gridmap/importer"
	"gridmap/validation"
	"sort"
	"strings"
)

// ErrMapTooLarge is returned when a preset cannot fit the canvas at one
// unit per cell.
var ErrMapTooLarge = errors.New("map does not fit the canvas")

// Preset is a named map stored on the search service.
type Preset struct {
	Name string
	Text string
}

// SetPresets replaces the preset list. The loaded preset stays selected
// if it is still listed.
func (e *EditorState) SetPresets(maps map[string]string) {
	current := e.SelectedPreset()

	e.presets = e.presets[:0]
	for name, text := range maps {
		e.presets = append(e.presets, Preset{Name: name, Text: text})
	}
	sort.Slice(e.presets, func(i, j int) bool {
		return e.presets[i].Name < e.presets[j].Name
	})

	e.preset = -1
	for i, p := range e.presets {
		if p.Name == current {
			e.preset = i
		}
	}
	e.touch()
}

// Presets returns the preset list, sorted by name.
func (e *EditorState) Presets() []Preset {
	return append([]Preset(nil), e.presets...)
}

// SelectedPreset returns the name of the loaded preset, or "" for a new map.
func (e *EditorState) SelectedPreset() string {
	if e.preset < 0 || e.preset >= len(e.presets) {
		return ""
	}
	return e.presets[e.preset].Name
}

// PresetLabel returns the selector label: the preset name or "New map".
func (e *EditorState) PresetLabel() string {
	if name := e.SelectedPreset(); name != "" {
		return name
	}
	return e.msgs.Get("New map")
}

// LoadPreset loads a preset by name.
func (e *EditorState) LoadPreset(name string) error {
	for i, p := range e.presets {
		if p.Name == name {
			if err := e.LoadMapText(p.Text); err != nil {
				return err
			}
			e.preset = i
			e.status = e.msgs.Get("Loaded map %q", name)
			return nil
		}
	}
	e.status = e.msgs.Get("Unknown map %q", name)
	e.touch()
	return fmt.Errorf("unknown preset: %s", name)
}

// CyclePreset loads the next entry of the selector. The entry after the
// last preset is a new map.
func (e *EditorState) CyclePreset() error {
	next := e.preset + 1
	if next >= len(e.presets) {
		return e.NewMap()
	}
	return e.LoadPreset(e.presets[next].Name)
}

// LoadMapText replaces the grid with a parsed map. Several start or
// goal cells are rejected. The cell size is recomputed so that the whole
// map fits the canvas.
func (e *EditorState) LoadMapText(text string) error {
	g, err := importer.FromText(text)
	if err != nil {
		e.status = e.msgs.Get("Malformed map: %s", err.Error())
		e.touch()
		return err
	}
	if err := validation.Duplicates(g); err != nil {
		var dup *validation.DuplicateEndpointError
		errors.As(err, &dup)
		e.status = e.msgs.Get("The map has %d %s cells; keep only one.", dup.Count, strings.ToLower(dup.Kind.String()))
		e.touch()
		return err
	}

	size := fitCellSize(g, e.canvasW, e.canvasH)
	if size < 1 {
		e.status = e.msgs.Get("The map does not fit the canvas")
		e.touch()
		return ErrMapTooLarge
	}

	e.grid = g
	e.cellSize = size
	e.preset = -1
	e.status = ""
	e.resetOverlay()
	e.touch()
	return nil
}

// fitCellSize returns the largest cell size showing all of g.
func fitCellSize(g *grid.Grid, canvasW, canvasH int) int {
	w, h := g.Size()
	return min(canvasW/w, canvasH/h)
}

// RequestRefresh asks the host to fetch the preset list again.
func (e *EditorState) RequestRefresh() {
	e.refreshRequested = true
}

// GetRefreshRequest returns and clears any preset refresh request
func (e *EditorState) GetRefreshRequest() bool {
	requested := e.refreshRequested
	e.refreshRequested = false
	return requested
}
