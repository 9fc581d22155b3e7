// Package dijkstra implements Dijkstra's shortest-path algorithm on a dense
// adjacency matrix.
//
// The solver finalizes vertices in order of increasing distance from the
// source, choosing the next vertex by a linear left-to-right scan.
//
// Complexity:
//
//   - Time:  O(V²) per computation. Each finalized vertex scans one matrix
//     row for relaxation and the whole distance vector for selection.
//   - Space: O(V) per computation for distances, visited flags and predecessors.
//
// Notes on implementation choices:
//
//   - The next vertex is the unvisited one with the smallest finite distance.
//     Ties go to the lowest index, which fixes which of several equal-cost
//     paths is reported.
//   - When no unvisited vertex has a finite distance the run stops and the
//     target's distance stays +Inf.
//   - Every computation allocates fresh state and returns it as a *Result.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/matrix"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Solver computes shortest paths over a fixed weight matrix.
//
// The matrix and vertex count are fixed for the Solver's lifetime. Each call
// to ComputeShortestPath replaces the result that GetPath reads from.
//
// A Solver is not safe for concurrent use. Concurrent queries over the same
// graph should use one Solver per goroutine; the matrix may be shared as long
// as nobody writes to it.
type Solver struct {
	m       matrix.Matrix // adjacency weights; read-only here
	n       int           // vertex count
	options Options       // configuration applied to every run
	last    *Result       // most recent successful computation, nil before the first
	errored bool          // sticky: set once GetPath is called before any computation
}

// New constructs a Solver over the n×n weight matrix m.
//
// Entry (i, j) of m is the weight of the directed edge i→j. Any value ≤ 0,
// NaN or +Inf means there is no such edge.
//
// New only rejects a nil matrix and a negative vertex count. Shape problems
// surface later as wrapped matrix.ErrOutOfRange errors, unless
// WithStrictMatrix is given, in which case they are reported here.
func New(m matrix.Matrix, n int, opts ...Option) (*Solver, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if m == nil {
		return nil, ErrNilMatrix
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeVertexCount, n)
	}
	if cfg.StrictMatrix {
		if err := matrix.ValidateAdjacency(m, n); err != nil {
			return nil, fmt.Errorf("dijkstra: strict matrix check: %w", err)
		}
	}

	return &Solver{m: m, n: n, options: cfg}, nil
}

// VertexCount returns the number of vertices the Solver was built with.
func (s *Solver) VertexCount() int {
	return s.n
}

// Solve runs Dijkstra's algorithm from source until target is finalized (or
// until the whole reachable set is finalized with WithFullTree) and returns
// the computation as a fresh Result. The Solver's own state is not touched,
// so Results from different calls coexist independently.
//
// Errors:
//   - ErrVertexOutOfRange if source or target is outside [0, n).
//   - a wrapped matrix.ErrOutOfRange if the matrix is smaller than n×n.
//
// An unreachable target is not an error: Result.Cost() is +Inf.
func (s *Solver) Solve(source, target int) (*Result, error) {
	if err := s.checkVertex("source", source); err != nil {
		return nil, err
	}
	if err := s.checkVertex("target", target); err != nil {
		return nil, err
	}

	r := &runner{
		m:       s.m,
		n:       s.n,
		options: s.options,
		source:  source,
		target:  target,
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	res := &Result{
		source:  source,
		target:  target,
		dist:    r.dist,
		visited: r.visited,
		prev:    r.prev,
	}
	log.Debugf("Shortest path %d→%d: cost=%v, finalized %d/%d vertices",
		source, target, res.Cost(), r.settled, s.n)

	return res, nil
}

// ComputeShortestPath returns the cost of the shortest path from source to
// target, or +Inf when target is unreachable. On success the computation
// becomes the one GetPath reads from, discarding the previous one.
//
// On error the previous computation is kept.
func (s *Solver) ComputeShortestPath(source, target int) (float64, error) {
	res, err := s.Solve(source, target)
	if err != nil {
		return math.Inf(1), err
	}
	s.last = res

	return res.Cost(), nil
}

// GetPath reconstructs the path found by the most recent ComputeShortestPath
// call. Vertices are returned in target-to-source order: the first element
// is target, the last is source.
//
// The pair is not checked against the one last computed; any pair consistent
// with the last predecessor tree works, and other pairs return ErrNoPath.
//
// If nothing has been computed yet, GetPath sets the sticky error flag (see
// HasErrorHappened) and returns ErrNotComputed.
func (s *Solver) GetPath(source, target int) ([]int, error) {
	if s.last == nil {
		s.errored = true
		log.Debugf("Path %d→%d requested before any computation", source, target)

		return nil, ErrNotComputed
	}

	return s.last.Path(source, target)
}

// HasErrorHappened reports whether GetPath was ever called before a
// computation. Once true it stays true.
func (s *Solver) HasErrorHappened() bool {
	return s.errored
}

// LastResult returns the most recent successful computation, if any.
func (s *Solver) LastResult() (*Result, bool) {
	return s.last, s.last != nil
}

// checkVertex rejects indices outside [0, n).
func (s *Solver) checkVertex(role string, v int) error {
	if v < 0 || v >= s.n {
		return fmt.Errorf("%w: %s=%d, n=%d", ErrVertexOutOfRange, role, v, s.n)
	}

	return nil
}

// runner holds the mutable state for a single computation.
type runner struct {
	m       matrix.Matrix    // The weight matrix; read-only.
	n       int              // Vertex count.
	options Options          // Configuration (FullTree, MaxDistance).
	source  int              // Start vertex.
	target  int              // Vertex whose finalization ends the run.
	dist    []float64        // Current best distance from source per vertex.
	visited []bool           // Tracks if a vertex's distance is finalized.
	prev    []fn.Option[int] // Predecessor on the current best path, None if unset.
	settled int              // Number of finalized vertices.
}

// init allocates fresh state: every distance +Inf, nothing visited, no
// predecessors, and the source at distance zero.
func (r *runner) init() {
	r.dist = make([]float64, r.n)
	r.visited = make([]bool, r.n)
	r.prev = make([]fn.Option[int], r.n)

	var v int
	for v = 0; v < r.n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = fn.None[int]()
	}

	r.dist[r.source] = 0
}

// process is the core loop. Starting at the source it relaxes the current
// vertex's outgoing edges, finalizes it, and scans for the next one.
//
// Loop termination conditions:
//
//   - The target has been finalized (unless FullTree is set).
//   - No unvisited vertex has a finite distance: everything reachable is done.
func (r *runner) process() error {
	cur := r.source
	for r.options.FullTree || !r.visited[r.target] {
		// 1) Relax all outgoing edges of cur.
		if err := r.relax(cur); err != nil {
			return err
		}

		// 2) cur's distance is now final.
		r.visited[cur] = true
		r.settled++
		log.Tracef("Finalized vertex %d at distance %v", cur, r.dist[cur])

		// 3) Pick the next vertex; stop when nothing reachable is left.
		next := r.next()
		if next.IsNone() {
			if !r.visited[r.target] {
				log.Debugf("Target %d unreachable from %d", r.target, r.source)
			}
			break
		}
		cur = next.UnsafeFromSome()
	}

	log.Tracef("Distances after run %d→%d: %v", r.source, r.target,
		spewClosure(r.dist))

	return nil
}

// relax examines every column of row cur and improves the distance of each
// unvisited neighbor reachable through a traversable edge.
// Only strictly shorter candidates are recorded.
func (r *runner) relax(cur int) error {
	var v int
	var w fn.Option[float64]
	var err error
	var newDist float64
	for v = 0; v < r.n; v++ {
		if w, err = matrix.EdgeWeight(r.m, cur, v); err != nil {
			return fmt.Errorf("dijkstra: relax vertex %d: %w", cur, err)
		}
		if w.IsNone() || r.visited[v] {
			continue
		}

		newDist = r.dist[cur] + w.UnsafeFromSome()

		// Candidates beyond the cap are never recorded.
		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = fn.Some(cur)
	}

	return nil
}

// next returns the unvisited vertex with the smallest finite distance, the
// lowest index winning ties, or None if no such vertex exists.
func (r *runner) next() fn.Option[int] {
	best := math.Inf(1)
	found := fn.None[int]()

	var i int
	for i = 0; i < r.n; i++ {
		if !r.visited[i] && r.dist[i] < best {
			best = r.dist[i]
			found = fn.Some(i)
		}
	}

	return found
}
