package editor

import (
	"errors"
	"gridmap/core"
	"gridmap/importer"
	"gridmap/validation"
	"strings"
	"testing"
)

func withPresets(t *testing.T) *EditorState {
	t.Helper()
	ed := newTestEditor(t)
	ed.SetPresets(map[string]string{
		"maze":     "S1X\n1XG\n",
		"corridor": "S1111G\n",
	})
	return ed
}

func TestSetPresetsSorted(t *testing.T) {
	ed := withPresets(t)
	presets := ed.Presets()
	if len(presets) != 2 || presets[0].Name != "corridor" || presets[1].Name != "maze" {
		t.Errorf("Presets() = %v", presets)
	}
}

func TestLoadPresetFitsCanvas(t *testing.T) {
	ed := withPresets(t)

	if err := ed.LoadPreset("maze"); err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if w, h := ed.Grid().Size(); w != 3 || h != 2 {
		t.Errorf("grid = %dx%d, want 3x2", w, h)
	}
	// min(100/3, 50/2)
	if ed.CellSize() != 25 {
		t.Errorf("CellSize() = %d, want 25", ed.CellSize())
	}
	if ed.SelectedPreset() != "maze" || ed.PresetLabel() != "maze" {
		t.Errorf("SelectedPreset() = %q", ed.SelectedPreset())
	}
	if c := cellAt(t, ed, 2, 1); c != core.GoalCell {
		t.Errorf("goal cell = %v", c)
	}

	// Clicks now address the larger cells
	if !ed.PointerDown(30, 5) {
		t.Error("click on a loaded map ignored")
	}
	if c := cellAt(t, ed, 1, 0); c != core.WallCell {
		t.Errorf("cell (1,0) = %v, want Wall", c)
	}
}

func TestLoadPresetUnknown(t *testing.T) {
	ed := withPresets(t)
	if err := ed.LoadPreset("nope"); err == nil {
		t.Error("LoadPreset accepted an unknown name")
	}
	if !strings.Contains(ed.Status(), "nope") {
		t.Errorf("Status() = %q", ed.Status())
	}
}

func TestLoadMapTextTooLarge(t *testing.T) {
	ed := newTestEditor(t)
	click(ed, 1, 1)

	wide := strings.Repeat("1", 101) + "\n"
	if err := ed.LoadMapText(wide); !errors.Is(err, ErrMapTooLarge) {
		t.Fatalf("LoadMapText error = %v, want ErrMapTooLarge", err)
	}
	if w, _ := ed.Grid().Size(); w != 10 {
		t.Error("oversized map replaced the grid")
	}
}

func TestLoadMapTextMalformed(t *testing.T) {
	ed := newTestEditor(t)
	err := ed.LoadMapText("S1\n1Z\n")

	var malformed *importer.MalformedMapError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedMapError", err)
	}
	if !strings.HasPrefix(ed.Status(), "Malformed map") {
		t.Errorf("Status() = %q", ed.Status())
	}
}

func TestLoadMapTextRejectsDuplicates(t *testing.T) {
	ed := newTestEditor(t)
	err := ed.LoadMapText("SS\n1G\n")

	var dup *validation.DuplicateEndpointError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want DuplicateEndpointError", err)
	}
	if dup.Kind != core.Start || dup.Count != 2 {
		t.Errorf("dup = %+v", dup)
	}
	if !strings.Contains(ed.Status(), "2 start cells") {
		t.Errorf("Status() = %q", ed.Status())
	}
}

func TestLoadMapTextClearsOverlay(t *testing.T) {
	ed := newTestEditor(t)
	placeEndpoints(t, ed)
	ticket, _ := ed.BeginSearch()
	ed.ApplySearch(ticket.Token, sampleOverlay())

	if err := ed.LoadMapText("S1G\n"); err != nil {
		t.Fatalf("LoadMapText: %v", err)
	}
	if !ed.Overlay().Empty() {
		t.Error("overlay survived loading a map")
	}
}

func TestCyclePreset(t *testing.T) {
	ed := withPresets(t)

	want := []string{"corridor", "maze", ""}
	for _, name := range want {
		if err := ed.CyclePreset(); err != nil {
			t.Fatalf("CyclePreset: %v", err)
		}
		if ed.SelectedPreset() != name {
			t.Errorf("SelectedPreset() = %q, want %q", ed.SelectedPreset(), name)
		}
	}
	if ed.PresetLabel() != "New map" {
		t.Errorf("PresetLabel() = %q", ed.PresetLabel())
	}
}

func TestSetPresetsKeepsSelection(t *testing.T) {
	ed := withPresets(t)
	ed.LoadPreset("maze")

	ed.SetPresets(map[string]string{"a": "SG\n", "maze": "S1X\n1XG\n"})
	if ed.SelectedPreset() != "maze" {
		t.Errorf("SelectedPreset() = %q after refresh", ed.SelectedPreset())
	}

	ed.SetPresets(map[string]string{"a": "SG\n"})
	if ed.SelectedPreset() != "" {
		t.Errorf("SelectedPreset() = %q for a removed preset", ed.SelectedPreset())
	}
}

func TestRefreshRequest(t *testing.T) {
	ed := newTestEditor(t)
	ed.RequestRefresh()
	if !ed.GetRefreshRequest() {
		t.Error("refresh request lost")
	}
	if ed.GetRefreshRequest() {
		t.Error("refresh request not cleared")
	}
}
