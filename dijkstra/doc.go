// Package dijkstra provides a textbook implementation of Dijkstra's
// shortest-path algorithm over a dense adjacency matrix with non-negative
// edge weights.
//
// Overview:
//
//   - A Solver holds a fixed n×n weight matrix (matrix.Matrix). Entry (i, j)
//     is the weight of the directed edge i→j; any value ≤ 0, NaN or +Inf
//     means "no edge".
//   - ComputeShortestPath(source, target) returns the minimum cost, or +Inf
//     when target is unreachable.
//   - GetPath(source, target) reconstructs the path of the latest
//     computation in target-to-source order.
//   - Solve(source, target) returns the computation itself as a *Result, so
//     several computations and their paths can be kept side by side.
//
// Vertex selection:
//
//   - The next vertex is found by a linear scan for the unvisited vertex with
//     the smallest finite distance; ties go to the lowest index. The tie rule
//     decides which of several equal-cost paths is reported.
//
// Complexity:
//
//   - Time:  O(V²) per computation.
//   - Space: O(V) per computation, plus the O(V²) matrix owned by the caller.
//
// Options:
//
//   - WithFullTree():        build the complete shortest-path tree.
//   - WithMaxDistance(d):    treat vertices farther than d as unreachable.
//   - WithStrictMatrix():    validate the matrix in New.
//
// Error handling (sentinel errors):
//
//   - ErrNotComputed:          GetPath called before any computation; the sticky
//     flag reported by HasErrorHappened is set as well.
//   - ErrNoPath:               the predecessor tree has no path for the pair.
//   - ErrVertexOutOfRange:     source or target outside [0, n).
//   - ErrNilMatrix, ErrNegativeVertexCount: rejected by New.
//   - ErrBadMaxDistance:       raised via panic by WithMaxDistance.
//
// An unreachable target is not an error; the cost is +Inf.
//
// Thread safety:
//
//   - A Solver is not safe for concurrent use. Use one Solver per goroutine;
//     they may share the same matrix read-only. Results are immutable.
//
// Logging:
//
//   - The package logs through a btclog.Logger, disabled by default.
//     Enable it with UseLogger.
package dijkstra
