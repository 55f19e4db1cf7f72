// Package validation checks that a map is ready to be searched or saved.
package validation

import (
	"errors"
	"fmt"
	"gridmap/core"
	"gridmap/grid"
	"strings"
)

// ErrEmptyMapName is returned when saving without a name.
var ErrEmptyMapName = errors.New("map name is empty")

// MissingEndpointError reports absent Start and/or Goal cells, in that order.
type MissingEndpointError struct {
	Missing []core.Kind
}

func (e *MissingEndpointError) Error() string {
	names := make([]string, len(e.Missing))
	for i, k := range e.Missing {
		names[i] = strings.ToLower(k.String())
	}
	return fmt.Sprintf("map has no %s cell", strings.Join(names, " or "))
}

// Has reports whether kind is among the missing endpoints.
func (e *MissingEndpointError) Has(kind core.Kind) bool {
	for _, k := range e.Missing {
		if k == kind {
			return true
		}
	}
	return false
}

// DuplicateEndpointError reports more than one Start or Goal cell.
type DuplicateEndpointError struct {
	Kind  core.Kind
	Count int
}

func (e *DuplicateEndpointError) Error() string {
	return fmt.Sprintf("map has %d %s cells, expected one", e.Count, strings.ToLower(e.Kind.String()))
}

// InvalidCostError reports a cell cost outside 1..9.
type InvalidCostError struct {
	Cost int
}

func (e *InvalidCostError) Error() string {
	return fmt.Sprintf("invalid cost %d: must be between 1 and %d", e.Cost, core.MaxWeightedCost)
}

// InvalidCellSizeError reports a cell size that does not fit the canvas.
type InvalidCellSizeError struct {
	Size int
	Max  int
}

func (e *InvalidCellSizeError) Error() string {
	return fmt.Sprintf("invalid cell size %d: must be between 1 and %d", e.Size, e.Max)
}

// Endpoints checks that g has exactly one Start and one Goal.
func Endpoints(g *grid.Grid) error {
	if err := Duplicates(g); err != nil {
		return err
	}

	var missing []core.Kind
	if _, ok := g.Start(); !ok {
		missing = append(missing, core.Start)
	}
	if _, ok := g.Goal(); !ok {
		missing = append(missing, core.Goal)
	}
	if len(missing) > 0 {
		return &MissingEndpointError{Missing: missing}
	}
	return nil
}

// Duplicates checks that g has at most one Start and one Goal.
func Duplicates(g *grid.Grid) error {
	starts, goals := g.Census()
	if starts > 1 {
		return &DuplicateEndpointError{Kind: core.Start, Count: starts}
	}
	if goals > 1 {
		return &DuplicateEndpointError{Kind: core.Goal, Count: goals}
	}
	return nil
}

// Cost checks a user-entered cell cost. 1 paints open cells, 2..9
// weighted ones; the map text has no encoding for anything else.
func Cost(cost int) error {
	if cost < 1 || cost > core.MaxWeightedCost {
		return &InvalidCostError{Cost: cost}
	}
	return nil
}

// CellSize checks that size yields at least a 1x1 grid on the canvas.
func CellSize(size, canvasWidth, canvasHeight int) error {
	limit := min(canvasWidth, canvasHeight)
	if size < 1 || size > limit {
		return &InvalidCellSizeError{Size: size, Max: limit}
	}
	return nil
}

// MapName checks the name a map is saved under.
func MapName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyMapName
	}
	return nil
}
