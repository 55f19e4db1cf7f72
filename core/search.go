package core

import "fmt"

// Algorithm identifies a search algorithm run by the search service.
type Algorithm string

const (
	BFS    Algorithm = "bfs"
	DFS    Algorithm = "dfs"
	UCS    Algorithm = "ucs"
	Greedy Algorithm = "greedy"
	AStar  Algorithm = "astar"
)

// Algorithms lists the algorithms in selector order.
func Algorithms() []Algorithm {
	return []Algorithm{BFS, DFS, UCS, Greedy, AStar}
}

// Informed reports whether the algorithm uses a heuristic.
func (a Algorithm) Informed() bool {
	return a == Greedy || a == AStar
}

// ParseAlgorithm converts an identifier to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown algorithm: %s", s)
}

// Heuristic identifies the distance estimate used by informed algorithms.
type Heuristic string

const (
	Euclidian Heuristic = "euclidian"
	Manhattan Heuristic = "manhattan"
)

// Heuristics lists the heuristics in selector order.
func Heuristics() []Heuristic {
	return []Heuristic{Euclidian, Manhattan}
}

// ParseHeuristic converts an identifier to a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	for _, h := range Heuristics() {
		if string(h) == s {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown heuristic: %s", s)
}
