package importer_test

import (
	"errors"
	"gridmap/core"
	"gridmap/export"
	"gridmap/grid"
	"gridmap/importer"
	"strings"
	"testing"
)

func TestFromTextScenario(t *testing.T) {
	g, err := importer.FromText("S11\n11G\n")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}

	w, h := g.Size()
	if w != 3 || h != 2 {
		t.Fatalf("Size() = %dx%d, want 3x2", w, h)
	}
	if p, ok := g.Start(); !ok || p != (core.Point{X: 0, Y: 0}) {
		t.Errorf("Start() = %v, %v", p, ok)
	}
	if p, ok := g.Goal(); !ok || p != (core.Point{X: 2, Y: 1}) {
		t.Errorf("Goal() = %v, %v", p, ok)
	}
}

func TestFromTextCells(t *testing.T) {
	g, err := importer.FromText("1X29\r\nSG11\r\n")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}

	want := map[core.Point]core.Cell{
		{X: 0, Y: 0}: core.OpenCell,
		{X: 1, Y: 0}: core.WallCell,
		{X: 2, Y: 0}: core.WeightedCell(2),
		{X: 3, Y: 0}: core.WeightedCell(9),
		{X: 0, Y: 1}: core.StartCell,
		{X: 1, Y: 1}: core.GoalCell,
	}
	for p, c := range want {
		got, err := g.Get(p)
		if err != nil {
			t.Fatalf("Get(%v): %v", p, err)
		}
		if got != c {
			t.Errorf("cell %v = %v, want %v", p, got, c)
		}
	}
}

func TestFromTextMalformed(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		line   int
		column int
	}{
		{"invalid character", "S1\n1.G\n", 2, 2},
		{"zero cost", "S0\n1G\n", 1, 2},
		{"lowercase", "s1\n1G\n", 1, 1},
		{"ragged row", "S11\n1G\n", 2, 0},
		{"empty", "", 0, 0},
		{"only newlines", "\n\n", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.FromText(tt.input)
			var malformed *importer.MalformedMapError
			if !errors.As(err, &malformed) {
				t.Fatalf("FromText(%q) error = %v, want MalformedMapError", tt.input, err)
			}
			if malformed.Line != tt.line || malformed.Column != tt.column {
				t.Errorf("error at line %d column %d, want %d/%d", malformed.Line, malformed.Column, tt.line, tt.column)
			}
			if !strings.HasPrefix(err.Error(), "malformed map") {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

func TestFromTextToleratesEndpointCounts(t *testing.T) {
	g, err := importer.FromText("SS1\n111\n")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	starts, goals := g.Census()
	if starts != 2 || goals != 0 {
		t.Errorf("Census() = %d, %d, want 2, 0", starts, goals)
	}
}

func TestFromTextSkipsEmptyLines(t *testing.T) {
	g, err := importer.FromText("S1\n\n1G")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if _, h := g.Size(); h != 2 {
		t.Errorf("height = %d, want 2", h)
	}
}

func TestRoundTrip(t *testing.T) {
	g, err := grid.New(6, 4)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(core.Point{X: 1, Y: 1}, core.StartCell)
	g.Set(core.Point{X: 5, Y: 3}, core.GoalCell)
	for x := 0; x < 6; x++ {
		g.Set(core.Point{X: x, Y: 2}, core.WallCell)
	}
	for cost := 2; cost <= 9; cost++ {
		g.Set(core.Point{X: (cost - 2) % 6, Y: (cost - 2) / 6 * 3}, core.WeightedCell(cost))
	}

	text := export.ToText(g)
	back, err := importer.FromText(text)
	if err != nil {
		t.Fatalf("FromText(%q): %v", text, err)
	}
	if !back.Equal(g) {
		t.Errorf("round trip differs:\n%s\n%s", text, export.ToText(back))
	}
}

func TestTextImporter(t *testing.T) {
	imp := importer.NewTextImporter()
	g, err := imp.Import("S1G\n")
	if err != nil {
		t.Fatal(err)
	}
	if w, _ := g.Size(); w != 3 {
		t.Errorf("width = %d", w)
	}
	if imp.GetFormatName() == "" || len(imp.GetFileExtensions()) == 0 {
		t.Error("importer metadata missing")
	}

	g2, err := importer.FromReader(strings.NewReader("S1G\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !g2.Equal(g) {
		t.Error("FromReader and Import disagree")
	}
}
