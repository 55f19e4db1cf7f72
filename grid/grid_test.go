package grid

import (
	"errors"
	"gridmap/core"
	"testing"
)

func mustNew(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", w, h, err)
	}
	return g
}

func TestNewGridIsOpen(t *testing.T) {
	g := mustNew(t, 4, 3)

	w, h := g.Size()
	if w != 4 || h != 3 {
		t.Fatalf("Size() = %dx%d, want 4x3", w, h)
	}

	g.Each(func(p core.Point, c core.Cell) {
		if c != core.OpenCell {
			t.Errorf("cell %v = %v, want Open", p, c)
		}
	})

	if _, ok := g.Start(); ok {
		t.Error("new grid has a start")
	}
	if _, ok := g.Goal(); ok {
		t.Error("new grid has a goal")
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidSize", size[0], size[1], err)
		}
	}
}

func TestSetOutOfBounds(t *testing.T) {
	g := mustNew(t, 3, 2)
	before := g.Clone()

	points := []core.Point{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: -1}}
	for _, p := range points {
		if err := g.Set(p, core.WallCell); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v) error = %v, want ErrOutOfBounds", p, err)
		}
		if _, err := g.Get(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v, want ErrOutOfBounds", p, err)
		}
	}

	if !g.Equal(before) {
		t.Error("out-of-bounds Set mutated the grid")
	}
}

func TestPlacingStartVacatesPrevious(t *testing.T) {
	g := mustNew(t, 3, 3)

	g.Set(core.Point{X: 0, Y: 0}, core.StartCell)
	g.Set(core.Point{X: 2, Y: 2}, core.StartCell)

	starts, _ := g.Census()
	if starts != 1 {
		t.Fatalf("Census() starts = %d, want 1", starts)
	}
	if c, _ := g.Get(core.Point{X: 0, Y: 0}); c != core.OpenCell {
		t.Errorf("previous start = %v, want Open", c)
	}
	if p, ok := g.Start(); !ok || p != (core.Point{X: 2, Y: 2}) {
		t.Errorf("Start() = %v, %v", p, ok)
	}

	// Same position again is a no-op for the role
	g.Set(core.Point{X: 2, Y: 2}, core.StartCell)
	if c, _ := g.Get(core.Point{X: 2, Y: 2}); c != core.StartCell {
		t.Errorf("start cell = %v", c)
	}
}

func TestPlacingGoalVacatesPrevious(t *testing.T) {
	g := mustNew(t, 3, 3)

	g.Set(core.Point{X: 1, Y: 0}, core.GoalCell)
	g.Set(core.Point{X: 1, Y: 1}, core.GoalCell)

	_, goals := g.Census()
	if goals != 1 {
		t.Fatalf("Census() goals = %d, want 1", goals)
	}
	if p, ok := g.Goal(); !ok || p != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Goal() = %v, %v", p, ok)
	}
}

func TestOverwritingEndpointDropsReference(t *testing.T) {
	g := mustNew(t, 2, 2)
	p := core.Point{X: 1, Y: 1}

	g.Set(p, core.StartCell)
	g.Set(p, core.WallCell)
	if _, ok := g.Start(); ok {
		t.Error("start reference kept after overwrite")
	}

	g.Set(p, core.GoalCell)
	g.Set(p, core.StartCell)
	if _, ok := g.Goal(); ok {
		t.Error("goal reference kept after start placed on it")
	}
	if got, ok := g.Start(); !ok || got != p {
		t.Errorf("Start() = %v, %v", got, ok)
	}
}

func TestFromCellsKeepsDuplicates(t *testing.T) {
	rows := [][]core.Cell{
		{core.StartCell, core.OpenCell, core.StartCell},
		{core.GoalCell, core.WallCell, core.WeightedCell(3)},
	}
	g, err := FromCells(rows)
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}

	starts, goals := g.Census()
	if starts != 2 || goals != 1 {
		t.Errorf("Census() = %d, %d, want 2, 1", starts, goals)
	}
	if c, _ := g.Get(core.Point{X: 2, Y: 1}); c.Cost() != 3 {
		t.Errorf("weighted cell cost = %d", c.Cost())
	}
}

func TestFromCellsRagged(t *testing.T) {
	rows := [][]core.Cell{
		{core.OpenCell, core.OpenCell},
		{core.OpenCell},
	}
	if _, err := FromCells(rows); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("FromCells ragged error = %v, want ErrInvalidSize", err)
	}
	if _, err := FromCells(nil); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("FromCells(nil) error = %v, want ErrInvalidSize", err)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		canvasW, canvasH, cell int
		wantW, wantH           int
	}{
		{840, 400, 25, 33, 16},
		{840, 400, 40, 21, 10},
		{10, 10, 3, 3, 3},
		{10, 10, 0, 0, 0},
	}
	for _, tt := range tests {
		w, h := Dimensions(tt.canvasW, tt.canvasH, tt.cell)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Dimensions(%d, %d, %d) = %d, %d, want %d, %d",
				tt.canvasW, tt.canvasH, tt.cell, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := mustNew(t, 2, 2)
	g.Set(core.Point{X: 0, Y: 0}, core.StartCell)

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from original")
	}

	c.Set(core.Point{X: 1, Y: 1}, core.WallCell)
	if c.Equal(g) {
		t.Error("mutating clone changed original")
	}
	if cell, _ := g.Get(core.Point{X: 1, Y: 1}); cell != core.OpenCell {
		t.Errorf("original cell = %v", cell)
	}
}
