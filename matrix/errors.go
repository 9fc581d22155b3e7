// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Callers match with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX) at the
// outer boundary.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows or cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/EdgeWeight) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that a matrix does not have the expected order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaN signals a NaN entry where a comparable weight is required.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
