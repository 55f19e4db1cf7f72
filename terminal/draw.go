package terminal

import (
	"fmt"
	"gridmap/core"
	"gridmap/editor"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	statusStyle  = tcell.StyleDefault.Reverse(true)
	commandStyle = tcell.StyleDefault
	dialogStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
)

// draw repaints the screen when the editor, the hover cell or the screen
// size changed since the last frame.
func (a *App) draw() {
	w, h := a.screen.Size()
	rev := a.editor.Revision()
	if a.drawn && rev == a.drawnRevision && a.hover == a.drawnHover && w == a.drawnWidth && h == a.drawnHeight {
		return
	}
	a.drawn = true
	a.drawnRevision, a.drawnHover = rev, a.hover
	a.drawnWidth, a.drawnHeight = w, h

	a.screen.Clear()
	bg := a.renderer.Palette().Background
	if img, err := a.renderer.RenderImage(a.editor.Scene()); err == nil {
		drawCanvas(a.screen, img, a.canvasRows(), bg)
	}

	a.drawStatus(h - 2)
	a.drawCommandLine(h - 1)
	if msg := a.editor.Dialog(); msg != "" {
		a.drawDialog(msg)
	}
	a.screen.Show()
}

// statusLine describes the editor: preset, mode, cost, search selection
// and the last message.
func (a *App) statusLine() string {
	ed := a.editor
	selection := string(ed.Algorithm())
	if ed.HeuristicEnabled() {
		selection += "/" + string(ed.Heuristic())
	}

	parts := []string{
		fmt.Sprintf("[ %s ]", ed.PresetLabel()),
		ed.Mode().String(),
		fmt.Sprintf("cost %d", ed.Cost()),
		selection,
	}
	if msg := ed.Status(); msg != "" {
		parts = append(parts, msg)
	}
	return strings.Join(parts, " | ")
}

func (a *App) drawStatus(row int) {
	a.drawLine(row, a.statusLine(), statusStyle)
}

// drawCommandLine shows the command being typed, or what is under the
// pointer.
func (a *App) drawCommandLine(row int) {
	if a.editor.InputMode() == editor.InputCommand {
		a.drawLine(row, ":"+a.editor.CommandBuffer()+"│", commandStyle)
		return
	}
	if a.hovering {
		a.drawLine(row, a.describe(a.hover), commandStyle)
	}
}

// describe names the cell at p and its part in the last search.
func (a *App) describe(p core.Point) string {
	c, err := a.editor.Grid().Get(p)
	if err != nil {
		return ""
	}
	text := fmt.Sprintf("%v %v", p, c)
	o := a.editor.Overlay()
	if o.WasVisited(p) {
		text += " · visited"
	}
	if o.OnPath(p) {
		text += " · path"
	}
	return text
}

// drawDialog centres msg in a box over the canvas.
func (a *App) drawDialog(msg string) {
	w, h := a.screen.Size()
	lines := strings.Split(msg, "\n")
	lines = append(lines, "", a.editor.Messages().Get("Press any key to continue"))

	boxWidth := 0
	for _, l := range lines {
		boxWidth = max(boxWidth, runewidth.StringWidth(l))
	}
	boxWidth = min(boxWidth+4, w)
	left := (w - boxWidth) / 2
	top := max((h-len(lines)-2)/2, 0)

	for i := 0; i < len(lines)+2 && top+i < h; i++ {
		text := ""
		if i > 0 && i <= len(lines) {
			text = "  " + lines[i-1]
		}
		a.drawText(left, top+i, boxWidth, text, dialogStyle)
	}
}

// drawLine fills a whole row with text truncated to the screen width.
func (a *App) drawLine(row int, text string, style tcell.Style) {
	w, _ := a.screen.Size()
	a.drawText(0, row, w, text, style)
}

// drawText writes text at (x, y) padded or truncated to width columns.
func (a *App) drawText(x, y, width int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, width, "…")
	col := x
	for _, r := range text {
		a.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	for ; col < x+width; col++ {
		a.screen.SetContent(col, y, ' ', nil, style)
	}
}
