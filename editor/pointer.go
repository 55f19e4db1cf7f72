package editor

import "gridmap/core"

// cellAt maps canvas coordinates to a grid cell.
func (e *EditorState) cellAt(px, py int) (core.Point, bool) {
	if px < 0 || py < 0 {
		return core.Point{}, false
	}
	p := core.Point{X: px / e.cellSize, Y: py / e.cellSize}
	return p, e.grid.InBounds(p)
}

// PointerDown handles a click at canvas coordinates (px, py) and reports
// whether the grid changed. In wall mode a wall reverts to open and any
// other non-endpoint becomes a wall.
func (e *EditorState) PointerDown(px, py int) bool {
	p, ok := e.target(px, py)
	if !ok {
		return false
	}
	cur, _ := e.grid.Get(p)

	switch e.Mode() {
	case ModeStart:
		return e.paint(p, core.StartCell)
	case ModeGoal:
		return e.paint(p, core.GoalCell)
	case ModeWeighted:
		if cur.IsEndpoint() {
			return false
		}
		return e.paint(p, core.WeightedCell(e.cost))
	default:
		if cur.IsEndpoint() {
			return false
		}
		if cur.Kind == core.Wall {
			return e.paint(p, core.OpenCell)
		}
		return e.paint(p, core.WallCell)
	}
}

// PointerDrag handles pointer motion with the button held. Walls and
// weights are forced, never toggled, and endpoints are skipped; in start
// or goal mode the endpoint follows the pointer.
func (e *EditorState) PointerDrag(px, py int) bool {
	p, ok := e.target(px, py)
	if !ok {
		return false
	}
	cur, _ := e.grid.Get(p)

	switch e.Mode() {
	case ModeStart:
		return e.paint(p, core.StartCell)
	case ModeGoal:
		return e.paint(p, core.GoalCell)
	case ModeWeighted:
		if cur.IsEndpoint() {
			return false
		}
		return e.paint(p, core.WeightedCell(e.cost))
	default:
		if cur.IsEndpoint() {
			return false
		}
		return e.paint(p, core.WallCell)
	}
}

// target resolves the cell under the pointer; blocked while a dialog is open.
func (e *EditorState) target(px, py int) (core.Point, bool) {
	if e.dialog != "" {
		return core.Point{}, false
	}
	return e.cellAt(px, py)
}

// paint stores cell at p. A change clears the overlay and orphans any
// search in flight.
func (e *EditorState) paint(p core.Point, cell core.Cell) bool {
	cur, err := e.grid.Get(p)
	if err != nil || cur == cell {
		return false
	}
	if err := e.grid.Set(p, cell); err != nil {
		return false
	}
	e.resetOverlay()
	e.touch()
	return true
}
