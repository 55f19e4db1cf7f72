// Package grid provides the mutable 2-D cell store edited by the map editor.
package grid

import (
	"errors"
	"gridmap/core"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid grid size")
)

// Grid is a rectangular matrix of cells with at most one Start and one Goal.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//
// Set and Get are the only entry points touching cells. Set keeps the
// start and goal references consistent: placing an endpoint vacates the
// previous one, and overwriting an endpoint cell drops its reference.
// Grids built by FromCells are not normalised; use Census to check them.
//
// Grid is not safe for concurrent use.
type Grid struct {
	cells  [][]core.Cell
	width  int
	height int
	start  *core.Point
	goal   *core.Point
}

// New creates a grid of Open cells.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	cells := make([][]core.Cell, height)
	for y := range cells {
		cells[y] = make([]core.Cell, width)
	}

	return &Grid{
		cells:  cells,
		width:  width,
		height: height,
	}, nil
}

// FromCells builds a grid from rows of cells. Every row must have the
// length of the first one. The last Start and Goal found become the
// endpoint references; duplicates are kept as-is.
func FromCells(rows [][]core.Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidSize
	}

	g, err := New(len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}

	for y, row := range rows {
		if len(row) != g.width {
			return nil, ErrInvalidSize
		}
		for x, c := range row {
			g.cells[y][x] = c
			p := core.Point{X: x, Y: y}
			switch c.Kind {
			case core.Start:
				g.start = &p
			case core.Goal:
				g.goal = &p
			}
		}
	}

	return g, nil
}

// Dimensions returns the grid size that fits a canvas for the given cell size.
func Dimensions(canvasWidth, canvasHeight, cellSize int) (width, height int) {
	if cellSize <= 0 {
		return 0, 0
	}
	return canvasWidth / cellSize, canvasHeight / cellSize
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the cell at p.
func (g *Grid) Get(p core.Point) (core.Cell, error) {
	if !g.InBounds(p) {
		return core.Cell{}, ErrOutOfBounds
	}
	return g.cells[p.Y][p.X], nil
}

// Set stores cell at p. Out-of-bounds points return ErrOutOfBounds and
// leave the grid untouched.
func (g *Grid) Set(p core.Point, cell core.Cell) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}

	switch cell.Kind {
	case core.Start:
		g.vacate(&g.start, p)
	case core.Goal:
		g.vacate(&g.goal, p)
	}

	// Overwriting an endpoint drops its reference
	if g.start != nil && *g.start == p && cell.Kind != core.Start {
		g.start = nil
	}
	if g.goal != nil && *g.goal == p && cell.Kind != core.Goal {
		g.goal = nil
	}

	g.cells[p.Y][p.X] = cell

	switch cell.Kind {
	case core.Start:
		g.start = &p
	case core.Goal:
		g.goal = &p
	}
	return nil
}

// vacate resets the previous occupant of an endpoint role to Open.
func (g *Grid) vacate(ref **core.Point, next core.Point) {
	prev := *ref
	if prev == nil || *prev == next {
		return
	}
	g.cells[prev.Y][prev.X] = core.OpenCell
	*ref = nil
}

// Start returns the start cell position, if any.
func (g *Grid) Start() (core.Point, bool) {
	if g.start == nil {
		return core.Point{}, false
	}
	return *g.start, true
}

// Goal returns the goal cell position, if any.
func (g *Grid) Goal() (core.Point, bool) {
	if g.goal == nil {
		return core.Point{}, false
	}
	return *g.goal, true
}

// Census counts the Start and Goal cells actually present.
func (g *Grid) Census() (starts, goals int) {
	for _, row := range g.cells {
		for _, c := range row {
			switch c.Kind {
			case core.Start:
				starts++
			case core.Goal:
				goals++
			}
		}
	}
	return starts, goals
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p core.Point, c core.Cell)) {
	for y, row := range g.cells {
		for x, c := range row {
			fn(core.Point{X: x, Y: y}, c)
		}
	}
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []core.Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	return append([]core.Cell(nil), g.cells[y]...)
}

// Equal reports whether both grids have the same size, cells and endpoints.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.cells {
		for x := range g.cells[y] {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return samePoint(g.start, other.start) && samePoint(g.goal, other.goal)
}

func samePoint(a, b *core.Point) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		cells:  make([][]core.Cell, g.height),
		width:  g.width,
		height: g.height,
	}
	for y := range g.cells {
		c.cells[y] = append([]core.Cell(nil), g.cells[y]...)
	}
	if g.start != nil {
		s := *g.start
		c.start = &s
	}
	if g.goal != nil {
		gl := *g.goal
		c.goal = &gl
	}
	return c
}
