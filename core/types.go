// Package core contains the fundamental types used throughout the gridmap editor.
package core

import "fmt"

// Point represents a cell coordinate in the grid.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Weighted cell costs are a single decimal digit.
const (
	MinWeightedCost = 2
	MaxWeightedCost = 9
)

// Kind classifies a cell.
type Kind int

const (
	Open     Kind = iota // Traversable, cost 1
	Wall                 // Impassable
	Weighted             // Traversable with a cost of 2..9
	Start                // Search origin
	Goal                 // Search destination
)

// String returns the kind name for display.
func (k Kind) String() string {
	switch k {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	case Weighted:
		return "Weighted"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Cell is a tagged value: a Kind plus the cost carried by Weighted cells.
// The zero value is an Open cell.
type Cell struct {
	Kind Kind
	cost int
}

// Predefined cells.
var (
	OpenCell  = Cell{Kind: Open}
	WallCell  = Cell{Kind: Wall}
	StartCell = Cell{Kind: Start}
	GoalCell  = Cell{Kind: Goal}
)

// WeightedCell returns a weighted cell for the given cost.
// A cost of 1 is an Open cell; costs outside 1..9 are clamped.
func WeightedCell(cost int) Cell {
	if cost <= 1 {
		return OpenCell
	}
	if cost > MaxWeightedCost {
		cost = MaxWeightedCost
	}
	return Cell{Kind: Weighted, cost: cost}
}

// Cost returns the traversal cost of the cell. Walls report 0.
func (c Cell) Cost() int {
	switch c.Kind {
	case Wall:
		return 0
	case Weighted:
		return c.cost
	default:
		return 1
	}
}

// IsEndpoint reports whether the cell is the Start or the Goal.
func (c Cell) IsEndpoint() bool {
	return c.Kind == Start || c.Kind == Goal
}

// Symbol returns the map-text character of the cell.
func (c Cell) Symbol() rune {
	switch c.Kind {
	case Wall:
		return 'X'
	case Start:
		return 'S'
	case Goal:
		return 'G'
	case Weighted:
		return rune('0' + c.cost)
	default:
		return '1'
	}
}

// String returns a readable description, e.g. "Weighted(4)".
func (c Cell) String() string {
	if c.Kind == Weighted {
		return fmt.Sprintf("Weighted(%d)", c.cost)
	}
	return c.Kind.String()
}

// CellFromSymbol converts a map-text character to a cell.
// The second return value is false for characters outside {1,X,S,G,2..9}.
func CellFromSymbol(r rune) (Cell, bool) {
	switch {
	case r == '1':
		return OpenCell, true
	case r == 'X':
		return WallCell, true
	case r == 'S':
		return StartCell, true
	case r == 'G':
		return GoalCell, true
	case r >= '0'+MinWeightedCost && r <= '0'+MaxWeightedCost:
		return Cell{Kind: Weighted, cost: int(r - '0')}, true
	default:
		return Cell{}, false
	}
}
