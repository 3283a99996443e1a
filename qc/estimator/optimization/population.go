// Package optimization provides a small generic Pareto-dominance filter used
// by the factory builder and the frontier search to keep only non-dominated
// candidates in a two-objective trade-off (e.g. physical qubits vs. duration).
package optimization

// Point2D pairs a two-dimensional cost coordinate (x, y), both minimized,
// with the arbitrary payload Item it was derived from.
type Point2D[T any] struct {
	X    float64
	Y    float64
	Item T
}

// dominates reports whether p is at least as good as q in both dimensions
// and strictly better in at least one, i.e. p Pareto-dominates q.
func (p Point2D[T]) dominates(q Point2D[T]) bool {
	return p.X <= q.X && p.Y <= q.Y && (p.X < q.X || p.Y < q.Y)
}

// Population is an unordered bag of candidate points used to incrementally
// build a non-dominated (Pareto) frontier.
type Population[T any] struct {
	points []Point2D[T]
}

// NewPopulation returns an empty Population.
func NewPopulation[T any]() *Population[T] {
	return &Population[T]{}
}

// Push appends a point without pruning. Callers that want a pruned frontier
// at every step should use FilterOutDominated after a batch of pushes, or
// call Push followed by FilterOutDominated per point for a fully incremental
// frontier.
func (p *Population[T]) Push(point Point2D[T]) {
	p.points = append(p.points, point)
}

// Len returns the number of points currently held (including dominated ones,
// until FilterOutDominated is called).
func (p *Population[T]) Len() int { return len(p.points) }

// FilterOutDominated removes every point that is dominated by some other
// point in the population, in place.
func (p *Population[T]) FilterOutDominated() {
	kept := make([]Point2D[T], 0, len(p.points))
	for i, candidate := range p.points {
		dominated := false
		for j, other := range p.points {
			if i == j {
				continue
			}
			if other.dominates(candidate) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, candidate)
		}
	}
	p.points = kept
}

// Extract returns the items of the surviving points, in the order they were
// pushed.
func (p *Population[T]) Extract() []T {
	items := make([]T, len(p.points))
	for i, pt := range p.points {
		items[i] = pt.Item
	}
	return items
}

// Points returns a copy of the surviving points.
func (p *Population[T]) Points() []Point2D[T] {
	out := make([]Point2D[T], len(p.points))
	copy(out, p.points)
	return out
}
