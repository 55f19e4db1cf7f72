package core

import "github.com/zyedidia/generic/mapset"

// Overlay holds the transient result of a search: the cells the service
// visited and the path it found, both in the order reported. The zero
// value is an empty overlay.
type Overlay struct {
	Visited []Point
	Path    []Point
	// Cost is the path cost reported by the service; HasCost is false
	// when the service did not send one.
	Cost    float64
	HasCost bool

	visited mapset.Set[Point]
	path    mapset.Set[Point]
}

// NewOverlay builds an overlay and indexes its points for lookups.
func NewOverlay(visited, path []Point) Overlay {
	o := Overlay{
		Visited: visited,
		Path:    path,
		visited: mapset.New[Point](),
		path:    mapset.New[Point](),
	}
	for _, p := range visited {
		o.visited.Put(p)
	}
	for _, p := range path {
		o.path.Put(p)
	}
	return o
}

// WithCost returns a copy of the overlay carrying a path cost.
func (o Overlay) WithCost(cost float64) Overlay {
	o.Cost = cost
	o.HasCost = true
	return o
}

// Empty reports whether the overlay has nothing to draw.
func (o Overlay) Empty() bool {
	return len(o.Visited) == 0 && len(o.Path) == 0
}

// WasVisited reports whether p is in the visited sequence.
func (o Overlay) WasVisited(p Point) bool {
	if len(o.Visited) == 0 {
		return false
	}
	return o.visited.Has(p)
}

// OnPath reports whether p is in the path sequence.
func (o Overlay) OnPath(p Point) bool {
	if len(o.Path) == 0 {
		return false
	}
	return o.path.Has(p)
}

// Filter returns a copy keeping only the points accepted by keep.
func (o Overlay) Filter(keep func(Point) bool) Overlay {
	var visited, path []Point
	for _, p := range o.Visited {
		if keep(p) {
			visited = append(visited, p)
		}
	}
	for _, p := range o.Path {
		if keep(p) {
			path = append(path, p)
		}
	}
	filtered := NewOverlay(visited, path)
	filtered.Cost, filtered.HasCost = o.Cost, o.HasCost
	return filtered
}
