package core

import "testing"

func TestAlgorithmInformed(t *testing.T) {
	tests := []struct {
		alg      Algorithm
		informed bool
	}{
		{BFS, false},
		{DFS, false},
		{UCS, false},
		{Greedy, true},
		{AStar, true},
	}
	for _, tt := range tests {
		if got := tt.alg.Informed(); got != tt.informed {
			t.Errorf("%s.Informed() = %v, want %v", tt.alg, got, tt.informed)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a, got, err)
		}
	}
	if _, err := ParseAlgorithm("dijkstra"); err == nil {
		t.Error("ParseAlgorithm accepted an unknown id")
	}
}

func TestParseHeuristic(t *testing.T) {
	if h, err := ParseHeuristic("manhattan"); err != nil || h != Manhattan {
		t.Errorf("ParseHeuristic(manhattan) = %v, %v", h, err)
	}
	if _, err := ParseHeuristic("chebyshev"); err == nil {
		t.Error("ParseHeuristic accepted an unknown id")
	}
}
