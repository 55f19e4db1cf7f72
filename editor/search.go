package editor

import (
	"errors"
	"gridmap/core"
	"gridmap/export"
	"gridmap/validation"
	"strings"
)

// SearchTicket is everything the host needs to issue one search.
type SearchTicket struct {
	Token     uint64
	Map       string
	Algorithm core.Algorithm
	Heuristic core.Heuristic
}

// SaveTicket is everything the host needs to save the map.
type SaveTicket struct {
	Name string
	Map  string
}

// Algorithm returns the selected search algorithm.
func (e *EditorState) Algorithm() core.Algorithm {
	return e.algorithm
}

// SetAlgorithm selects the search algorithm.
func (e *EditorState) SetAlgorithm(a core.Algorithm) {
	e.algorithm = a
	e.touch()
}

// CycleAlgorithm selects the next algorithm.
func (e *EditorState) CycleAlgorithm() {
	all := core.Algorithms()
	for i, a := range all {
		if a == e.algorithm {
			e.SetAlgorithm(all[(i+1)%len(all)])
			return
		}
	}
	e.SetAlgorithm(all[0])
}

// Heuristic returns the selected heuristic.
func (e *EditorState) Heuristic() core.Heuristic {
	return e.heuristic
}

// HeuristicEnabled reports whether the heuristic selector applies to the
// selected algorithm.
func (e *EditorState) HeuristicEnabled() bool {
	return e.algorithm.Informed()
}

// SetHeuristic selects the heuristic. It is ignored while the selected
// algorithm is uninformed.
func (e *EditorState) SetHeuristic(h core.Heuristic) bool {
	if !e.HeuristicEnabled() {
		return false
	}
	e.heuristic = h
	e.touch()
	return true
}

// CycleHeuristic selects the next heuristic.
func (e *EditorState) CycleHeuristic() {
	all := core.Heuristics()
	next := all[0]
	for i, h := range all {
		if h == e.heuristic {
			next = all[(i+1)%len(all)]
		}
	}
	e.SetHeuristic(next)
}

// Validate checks that the map can be searched or saved. A missing
// endpoint opens the blocking dialog naming it.
func (e *EditorState) Validate() error {
	err := validation.Endpoints(e.grid)
	if err == nil {
		return nil
	}

	var missing *validation.MissingEndpointError
	var dup *validation.DuplicateEndpointError
	switch {
	case errors.As(err, &missing):
		var lines []string
		if missing.Has(core.Start) {
			lines = append(lines, e.msgs.Get("Please place a start cell. Hold S and click on the map to place it."))
		}
		if missing.Has(core.Goal) {
			lines = append(lines, e.msgs.Get("Please place a goal cell. Hold G and click on the map to place it."))
		}
		e.dialog = strings.Join(lines, "\n")
	case errors.As(err, &dup):
		e.dialog = e.msgs.Get("The map has %d %s cells; keep only one.", dup.Count, strings.ToLower(dup.Kind.String()))
	}
	e.touch()
	return err
}

// BeginSearch validates the map and issues a new request token. Any
// earlier search still in flight becomes stale.
func (e *EditorState) BeginSearch() (SearchTicket, error) {
	if err := e.Validate(); err != nil {
		return SearchTicket{}, err
	}

	e.lastToken++
	e.pending = e.lastToken
	e.status = e.msgs.Get("Searching with %s...", e.algorithmLabel())
	e.touch()

	return SearchTicket{
		Token:     e.pending,
		Map:       export.ToText(e.grid),
		Algorithm: e.algorithm,
		Heuristic: e.heuristic,
	}, nil
}

// Pending returns the token of the search being awaited, 0 for none.
func (e *EditorState) Pending() uint64 {
	return e.pending
}

// ApplySearch installs a search result as the overlay. Results for any
// token other than the latest, or arriving after the grid was edited,
// are dropped and false is returned. Points outside the grid are
// discarded.
func (e *EditorState) ApplySearch(token uint64, result core.Overlay) bool {
	if token == 0 || token != e.pending {
		return false
	}
	e.pending = 0
	e.overlay = result.Filter(e.grid.InBounds)

	switch {
	case len(e.overlay.Path) == 0:
		e.status = e.msgs.Get("No path found (%d cells visited)", len(e.overlay.Visited))
	case e.overlay.HasCost:
		e.status = e.msgs.Get("Path of %d cells, cost %.2f (%d cells visited)",
			len(e.overlay.Path), e.overlay.Cost, len(e.overlay.Visited))
	default:
		e.status = e.msgs.Get("Path of %d cells (%d cells visited)", len(e.overlay.Path), len(e.overlay.Visited))
	}
	e.touch()
	return true
}

// FailSearch reports a failed search. Stale tokens are ignored.
func (e *EditorState) FailSearch(token uint64, err error) bool {
	if token == 0 || token != e.pending {
		return false
	}
	e.pending = 0
	e.status = e.msgs.Get("Search failed: %s", err.Error())
	e.touch()
	return true
}

// BeginSave validates the map and the name it is saved under.
func (e *EditorState) BeginSave(name string) (SaveTicket, error) {
	if err := e.Validate(); err != nil {
		return SaveTicket{}, err
	}
	name = strings.TrimSpace(name)
	if err := validation.MapName(name); err != nil {
		e.dialog = e.msgs.Get("Please enter a name for the map.")
		e.touch()
		return SaveTicket{}, err
	}

	e.mapName = name
	e.status = e.msgs.Get("Saving %q...", name)
	e.touch()
	return SaveTicket{Name: name, Map: export.ToText(e.grid)}, nil
}

// CompleteSave reports the outcome of a save.
func (e *EditorState) CompleteSave(name string, err error) {
	if err != nil {
		e.status = e.msgs.Get("Save failed: %s", err.Error())
	} else {
		e.status = e.msgs.Get("Map saved successfully!")
	}
	e.touch()
}

// MapName returns the name the map was last saved under.
func (e *EditorState) MapName() string {
	return e.mapName
}

func (e *EditorState) algorithmLabel() string {
	if e.HeuristicEnabled() {
		return string(e.algorithm) + "/" + string(e.heuristic)
	}
	return string(e.algorithm)
}
