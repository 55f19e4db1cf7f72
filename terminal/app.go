// Package terminal hosts the map editor in a terminal using tcell.
//
// The event loop owns the editor. Service requests run on their own
// goroutines and post their outcome back as interrupt events, which the
// loop applies through the editor's token check.
package terminal

import (
	"context"
	"fmt"
	"gridmap/client"
	"gridmap/core"
	"gridmap/editor"
	"gridmap/export"
	"gridmap/render"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Rows below the canvas: status line and command line.
const chromeRows = 2

// Options configures an App.
type Options struct {
	CellSize int
	Cost     int
	Language string
	Palette  render.Palette // zero value for render.DefaultPalette
	Timeout  time.Duration
	Logger   *log.Logger
	MapText  string // initial map, "" for an empty grid
}

// App is the terminal editor.
type App struct {
	screen   tcell.Screen
	editor   *editor.EditorState
	service  Service
	renderer *render.Renderer
	logger   *log.Logger
	timeout  time.Duration
	ctx      context.Context

	// dispatch runs a service request off the event loop
	dispatch func(func())

	// Pointer state
	mouseDown bool
	lastCell  core.Point
	hover     core.Point
	hovering  bool

	// What is on screen
	drawnRevision uint64
	drawnHover    core.Point
	drawnWidth    int
	drawnHeight   int
	drawn         bool
}

// NewApp creates an editor sized to the screen. The screen must already
// be initialised.
func NewApp(screen tcell.Screen, svc Service, opts Options) (*App, error) {
	w, h := canvasSize(screen)

	ed, err := editor.New(editor.Options{
		CanvasWidth:  w,
		CanvasHeight: h,
		CellSize:     opts.CellSize,
		Cost:         opts.Cost,
		Language:     opts.Language,
	})
	if err != nil {
		return nil, err
	}
	if opts.MapText != "" {
		if err := ed.LoadMapText(opts.MapText); err != nil {
			return nil, fmt.Errorf("initial map: %w", err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = client.DefaultTimeout
	}

	renderer := render.NewRenderer()
	if opts.Palette.Background != nil {
		renderer.SetPalette(opts.Palette)
	}

	return &App{
		screen:   screen,
		editor:   ed,
		service:  svc,
		renderer: renderer,
		logger:   logger,
		timeout:  timeout,
		ctx:      context.Background(),
		dispatch: func(f func()) { go f() },
	}, nil
}

// canvasSize returns the canvas in pixels for the current screen.
func canvasSize(screen tcell.Screen) (width, height int) {
	w, h := screen.Size()
	return max(w, 1), max(h-chromeRows, 1) * pixelsPerRow
}

// Editor returns the editor driven by the app.
func (a *App) Editor() *editor.EditorState {
	return a.editor
}

// Run loads the preset list and processes events until the user quits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.post(shutdown{})
		case <-done:
		}
	}()

	a.refresh()
	for {
		a.draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.handleEvent(ev) {
			return nil
		}
	}
}

// handleEvent applies one event and reports whether to quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.editor.SetCanvasSize(canvasSize(a.screen))
		a.screen.Sync()

	case *tcell.EventKey:
		if a.editor.HandleKey(keyRune(ev)) {
			return true
		}

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(shutdown); ok {
			return true
		}
		a.applyResult(ev.Data())
	}

	return a.processRequests()
}

// keyRune maps tcell keys onto the runes the editor understands.
func keyRune(ev *tcell.EventKey) rune {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune()
	case tcell.KeyEnter:
		return 13
	case tcell.KeyEscape:
		return 27
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return 127
	case tcell.KeyCtrlC:
		return 3
	default:
		return 0
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	rows := a.canvasRows()
	px, py := canvasPoint(col, row)
	size := a.editor.CellSize()
	cell := core.Point{X: px / size, Y: py / size}

	if ev.Buttons()&tcell.Button1 == 0 {
		a.mouseDown = false
		a.hover, a.hovering = cell, row < rows
		return
	}
	if row >= rows {
		return
	}

	if !a.mouseDown {
		a.mouseDown = true
		a.lastCell = cell
		a.editor.PointerDown(px, py)
		return
	}
	if cell != a.lastCell {
		a.lastCell = cell
		a.editor.PointerDrag(px, py)
	}
}

func (a *App) canvasRows() int {
	_, h := a.screen.Size()
	return max(h-chromeRows, 1)
}

// processRequests starts whatever the editor asked for and reports
// whether to quit.
func (a *App) processRequests() bool {
	ed := a.editor

	if ed.GetQuitRequest() {
		return true
	}
	if ed.GetRefreshRequest() {
		a.refresh()
	}
	if ed.GetSearchRequest() {
		if ticket, err := ed.BeginSearch(); err == nil {
			a.search(ticket)
		}
	}
	if ok, name := ed.GetSaveRequest(); ok {
		if ticket, err := ed.BeginSave(name); err == nil {
			a.save(ticket)
		}
	}
	if format, filename := ed.GetExportRequest(); format != "" {
		a.export(format, filename)
	}
	return false
}

// post hands a result to the event loop.
func (a *App) post(data interface{}) {
	if err := a.screen.PostEvent(tcell.NewEventInterrupt(data)); err != nil {
		a.logger.Printf("event queue full, dropped %T", data)
	}
}

func (a *App) request() (context.Context, context.CancelFunc) {
	return context.WithTimeout(a.ctx, a.timeout)
}

func (a *App) refresh() {
	a.dispatch(func() {
		ctx, cancel := a.request()
		defer cancel()
		maps, err := a.service.GetMaps(ctx)
		a.post(mapsDone{maps: maps, err: err})
	})
}

func (a *App) search(t editor.SearchTicket) {
	a.logger.Printf("search %d: %s", t.Token, t.Algorithm)
	a.dispatch(func() {
		ctx, cancel := a.request()
		defer cancel()
		res, err := a.service.StartSearch(ctx, client.SearchRequest{
			Map:       t.Map,
			Algorithm: t.Algorithm,
			Heuristic: t.Heuristic,
		})
		a.post(searchDone{token: t.Token, result: res, err: err})
	})
}

func (a *App) save(t editor.SaveTicket) {
	a.dispatch(func() {
		ctx, cancel := a.request()
		defer cancel()
		err := a.service.SaveMap(ctx, t.Name, t.Map)
		a.post(saveDone{name: t.Name, err: err})
	})
}

// applyResult installs a request outcome in the editor.
func (a *App) applyResult(data interface{}) {
	ed := a.editor
	msgs := ed.Messages()

	switch r := data.(type) {
	case searchDone:
		if r.err != nil {
			a.logger.Printf("search %d failed: %v", r.token, r.err)
			if !ed.FailSearch(r.token, r.err) {
				a.logger.Printf("dropped stale search failure %d", r.token)
			}
			return
		}
		if !ed.ApplySearch(r.token, r.result.Overlay()) {
			a.logger.Printf("dropped stale search response %d", r.token)
		}

	case mapsDone:
		if r.err != nil {
			a.logger.Printf("get maps: %v", r.err)
			ed.SetStatus(msgs.Get("Could not load maps: %s", r.err.Error()))
			return
		}
		ed.SetPresets(r.maps)
		ed.SetStatus(msgs.Get("%d maps available", len(r.maps)))

	case saveDone:
		if r.err != nil {
			a.logger.Printf("save %q: %v", r.name, r.err)
		}
		ed.CompleteSave(r.name, r.err)
		if r.err == nil {
			a.refresh()
		}
	}
}

// export writes the current scene to a file.
func (a *App) export(format, filename string) {
	msgs := a.editor.Messages()
	if err := a.writeExport(format, filename); err != nil {
		a.logger.Printf("export %s: %v", filename, err)
		a.editor.SetStatus(msgs.Get("Export failed: %s", err.Error()))
		return
	}
	a.editor.SetStatus(msgs.Get("Exported %s", filename))
}

func (a *App) writeExport(format, filename string) error {
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporterWith(f, a.renderer)
	if err != nil {
		return err
	}
	data, err := exporter.Export(a.editor.Scene())
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
