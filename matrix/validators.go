// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the checks used by strict solver
//    construction and by the graph-file loader.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Note:
//  - Each validator states what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateOrder checks that m has exactly n rows, i.e. that it describes
// a graph on n vertices. Pair with ValidateSquare for the column count.
// Complexity: O(1).
func ValidateOrder(m Matrix, n int) error {
	if m.Rows() != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateOrder: rows=%d want=%d", m.Rows(), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateNoNaN scans every entry and rejects NaN. Infinities are accepted:
// +Inf and -Inf are both valid "no edge" encodings.
// Complexity: O(r*c).
func ValidateNoNaN(m Matrix) error {
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNoNaN", err)
			}
			if math.IsNaN(v) {
				return validatorErrorf(fmt.Sprintf("ValidateNoNaN: (%d,%d)", i, j), ErrNaN)
			}
		}
	}

	return nil
}

// ValidateAdjacency runs the full strict check sequence for a graph on n
// vertices: NotNil → Square → Order → NoNaN.
func ValidateAdjacency(m Matrix, n int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateOrder(m, n); err != nil {
		return err
	}

	return ValidateNoNaN(m)
}
