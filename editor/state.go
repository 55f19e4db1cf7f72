package editor

import (
	"errors"
	"gridmap/core"
	"gridmap/grid"
	"gridmap/render"
	"gridmap/validation"
)

// Options configures a new editor.
type Options struct {
	CanvasWidth  int // canvas size in pointer units
	CanvasHeight int
	CellSize     int // pointer units per cell side
	Cost         int // initial weighted-cell cost, 1..9
	Language     string
}

// DefaultOptions returns the sizes of the original 840x400 canvas.
func DefaultOptions() Options {
	return Options{
		CanvasWidth:  840,
		CanvasHeight: 400,
		CellSize:     25,
		Cost:         1,
	}
}

// EditorState is the whole editor: the grid being edited, the overlay
// of the last search and the UI state around them. All mutation goes
// through its methods; nothing is kept in package variables.
type EditorState struct {
	grid     *grid.Grid
	overlay  core.Overlay
	canvasW  int
	canvasH  int
	cellSize int
	cost     int

	// Held modifier keys
	held [modifierCount]bool

	// Search selection
	algorithm core.Algorithm
	heuristic core.Heuristic

	// Presets from the service, sorted by name; preset is the index of
	// the loaded one or -1 for a new map
	presets []Preset
	preset  int
	mapName string

	// Request tokens
	lastToken uint64 // last issued
	pending   uint64 // token whose response is awaited, 0 for none

	// Input state
	input         InputMode
	commandBuffer []rune

	// Messages
	status string
	dialog string
	msgs   *Catalog

	// Requests for the host
	searchRequested  bool
	saveRequested    bool
	saveName         string
	exportFormat     string
	exportFilename   string
	refreshRequested bool
	quitRequested    bool

	revision uint64
}

// New creates an editor with an all-Open grid sized from the options.
func New(opts Options) (*EditorState, error) {
	if err := validation.CellSize(opts.CellSize, opts.CanvasWidth, opts.CanvasHeight); err != nil {
		return nil, err
	}
	if err := validation.Cost(opts.Cost); err != nil {
		return nil, err
	}

	e := &EditorState{
		canvasW:   opts.CanvasWidth,
		canvasH:   opts.CanvasHeight,
		cellSize:  opts.CellSize,
		cost:      opts.Cost,
		algorithm: core.BFS,
		heuristic: core.Euclidian,
		preset:    -1,
		msgs:      NewCatalog(opts.Language),
	}
	if err := e.startMap(); err != nil {
		return nil, err
	}
	return e, nil
}

// startMap replaces the grid with a fresh one for the current cell size.
func (e *EditorState) startMap() error {
	w, h := grid.Dimensions(e.canvasW, e.canvasH, e.cellSize)
	g, err := grid.New(w, h)
	if err != nil {
		return err
	}
	e.grid = g
	e.resetOverlay()
	e.touch()
	return nil
}

// touch marks the state as changed so hosts redraw.
func (e *EditorState) touch() {
	e.revision++
}

// resetOverlay drops the overlay and any search still in flight.
func (e *EditorState) resetOverlay() {
	e.overlay = core.Overlay{}
	e.pending = 0
}

// Revision increases on every state change. Hosts redraw when it moves.
func (e *EditorState) Revision() uint64 {
	return e.revision
}

// Grid returns the grid being edited. Callers must not mutate it.
func (e *EditorState) Grid() *grid.Grid {
	return e.grid
}

// Overlay returns the current search overlay.
func (e *EditorState) Overlay() core.Overlay {
	return e.overlay
}

// Scene returns what the renderer should draw.
func (e *EditorState) Scene() render.Scene {
	return render.Scene{Grid: e.grid, Overlay: e.overlay, CellSize: e.cellSize}
}

// CellSize returns the side of a cell in pointer units.
func (e *EditorState) CellSize() int {
	return e.cellSize
}

// CanvasSize returns the canvas size in pointer units.
func (e *EditorState) CanvasSize() (width, height int) {
	return e.canvasW, e.canvasH
}

// SetCanvasSize changes the canvas used for new maps and fitting
// presets. The current grid is kept.
func (e *EditorState) SetCanvasSize(width, height int) {
	if width == e.canvasW && height == e.canvasH {
		return
	}
	e.canvasW, e.canvasH = width, height
	e.touch()
}

// Cost returns the cost painted in weighted mode.
func (e *EditorState) Cost() int {
	return e.cost
}

// SetCost sets the cost painted in weighted mode.
func (e *EditorState) SetCost(cost int) error {
	if err := validation.Cost(cost); err != nil {
		e.status = e.msgs.Get("Cost must be between 1 and 9")
		e.touch()
		return err
	}
	e.cost = cost
	e.touch()
	return nil
}

// SetCellSize reallocates the grid for a new cell size, discarding its
// content.
func (e *EditorState) SetCellSize(size int) error {
	if err := validation.CellSize(size, e.canvasW, e.canvasH); err != nil {
		var invalid *validation.InvalidCellSizeError
		if errors.As(err, &invalid) {
			e.status = e.msgs.Get("Cell size must be between 1 and %d", invalid.Max)
		}
		e.touch()
		return err
	}
	e.cellSize = size
	e.preset = -1
	return e.startMap()
}

// NewMap discards the grid and starts an empty one.
func (e *EditorState) NewMap() error {
	e.preset = -1
	e.status = ""
	return e.startMap()
}

// Status returns the status line message.
func (e *EditorState) Status() string {
	return e.status
}

// SetStatus replaces the status line message.
func (e *EditorState) SetStatus(msg string) {
	e.status = msg
	e.touch()
}

// Dialog returns the blocking message, or "" when none is shown.
func (e *EditorState) Dialog() string {
	return e.dialog
}

// DismissDialog closes the blocking message.
func (e *EditorState) DismissDialog() {
	if e.dialog == "" {
		return
	}
	e.dialog = ""
	e.touch()
}

// Messages returns the catalog used for user-facing text.
func (e *EditorState) Messages() *Catalog {
	return e.msgs
}
