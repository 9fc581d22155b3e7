// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest distances (Floyd–Warshall) over an adjacency
//     matrix that follows the DecodeWeight "no edge" convention.
//   - Serves as an independent reference for single-pair solvers.
//
// Contract:
//   - Square input; the input is not modified. Output +Inf means "no path".

package matrix

import (
	"fmt"
	"math"
)

// distancesFromAdjacency builds the initial distance matrix:
// diagonal 0, traversable edges keep their weight, everything else +Inf.
// Complexity: O(n²).
func distancesFromAdjacency(m Matrix) (*Dense, error) {
	n := m.Rows()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var i, j int
	var w float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // zero from NewDense
			}
			if w, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*n+j] = DecodeWeight(w).UnwrapOr(math.Inf(1))
		}
	}

	return d, nil
}

// floydWarshallInPlace runs the APSP closure on a square *Dense in-place.
// Loop order is fixed (k → i → j); only strict improvements are written.
// Time: O(n³); extra space: O(1).
func floydWarshallInPlace(d *Dense) {
	n := d.r
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// AllPairsDistances returns a new n×n matrix whose (i, j) entry is the
// shortest distance from i to j in the adjacency matrix m, +Inf if j is
// unreachable from i. Diagonal entries are 0.
//
// Errors: ErrNilMatrix, ErrNonSquare (both wrapped).
// Complexity: Time O(n³), space O(n²).
func AllPairsDistances(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("AllPairsDistances: %w", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("AllPairsDistances: %w", err)
	}

	d, err := distancesFromAdjacency(m)
	if err != nil {
		return nil, fmt.Errorf("AllPairsDistances: %w", err)
	}
	floydWarshallInPlace(d)

	return d, nil
}
