package dijkstra

import (
	"fmt"
	"math"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Result is one finished shortest-path computation: the distance estimates,
// the finalized set, and the predecessor tree rooted at the source.
//
// A Result is immutable once returned and may be shared between goroutines.
type Result struct {
	source, target int
	dist           []float64
	visited        []bool
	prev           []fn.Option[int]
}

// Source returns the vertex the computation started from.
func (r *Result) Source() int { return r.source }

// Target returns the vertex the computation was run for.
func (r *Result) Target() int { return r.target }

// Order returns the number of vertices covered by the Result.
func (r *Result) Order() int { return len(r.dist) }

// Cost returns the shortest distance from source to target, +Inf if the
// target is unreachable.
func (r *Result) Cost() float64 { return r.dist[r.target] }

// Reachable reports whether a finite-cost path to the target exists.
func (r *Result) Reachable() bool { return !math.IsInf(r.Cost(), 1) }

// Distance returns the best known distance to v. For finalized vertices
// (see Visited) it is the shortest distance; for others it is an upper
// bound, +Inf if v was never reached. Out-of-range v yields +Inf.
func (r *Result) Distance(v int) float64 {
	if v < 0 || v >= len(r.dist) {
		return math.Inf(1)
	}

	return r.dist[v]
}

// Visited reports whether v's distance was finalized during the run.
func (r *Result) Visited(v int) bool {
	return v >= 0 && v < len(r.visited) && r.visited[v]
}

// Predecessor returns the previous hop on the best known path to v, or None
// if v is the source, unreached, or out of range.
func (r *Result) Predecessor(v int) fn.Option[int] {
	if v < 0 || v >= len(r.prev) {
		return fn.None[int]()
	}

	return r.prev[v]
}

// Distances returns a copy of the distance vector.
func (r *Result) Distances() []float64 {
	out := make([]float64, len(r.dist))
	copy(out, r.dist)

	return out
}

// Path walks the predecessor links back from target to source and returns
// the vertices in target-to-source order. Path(s, s) is always [s].
//
// Errors:
//   - ErrVertexOutOfRange if source or target is outside [0, n).
//   - ErrNoPath if the chain from target hits an unset predecessor (or runs
//     longer than n hops) before reaching source.
func (r *Result) Path(source, target int) ([]int, error) {
	n := len(r.prev)
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, fmt.Errorf("%w: path %d→%d, n=%d", ErrVertexOutOfRange, source, target, n)
	}

	path := []int{target}
	cur := target
	for cur != source {
		p := r.prev[cur]
		if p.IsNone() {
			return nil, fmt.Errorf("%w: %d→%d, vertex %d has no predecessor",
				ErrNoPath, source, target, cur)
		}
		cur = p.UnsafeFromSome()
		path = append(path, cur)

		// A tree path never repeats a vertex.
		if len(path) > n {
			return nil, fmt.Errorf("%w: %d→%d, predecessor chain does not end",
				ErrNoPath, source, target)
		}
	}

	return path, nil
}
