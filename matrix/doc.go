// Package matrix offers the dense weight storage used by lvpath's shortest-path
// solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - NewDenseFromRows for building a Dense from nested slices.
//   - EdgeWeight, which decodes an adjacency entry into an explicit
//     fn.Option[float64]: Some(w) for a traversable edge, None otherwise.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateOrder, ValidateNoNaN)
//     used by strict solver construction and by the graph-file loader.
//
// Adjacency convention:
//
//	entry (i, j) is the weight of the directed edge i→j.
//	Any value ≤ 0, NaN or +Inf means "no edge".
//
// Matrices are best for dense or small graphs where O(V²) memory is acceptable.
//
// Errors are package sentinels (ErrBadShape, ErrOutOfRange, ...). Match them
// with errors.Is; call sites wrap them with context.
package matrix
