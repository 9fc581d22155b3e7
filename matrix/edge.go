// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// EdgeWeight decodes the adjacency entry (from, to) of m.
//
// Returns:
//   - fn.Some(w) when w is a traversable edge weight (0 < w < +Inf).
//   - fn.None when the entry encodes "no edge": w ≤ 0, NaN or +Inf.
//   - ErrOutOfRange (wrapped) when (from, to) is outside m.
//
// An infinite entry is reported as None because an infinite edge can never
// improve a finite distance.
// Complexity: O(1).
func EdgeWeight(m Matrix, from, to int) (fn.Option[float64], error) {
	w, err := m.At(from, to)
	if err != nil {
		return fn.None[float64](), fmt.Errorf("EdgeWeight(%d,%d): %w", from, to, err)
	}

	return DecodeWeight(w), nil
}

// DecodeWeight applies the adjacency "no edge" convention to a raw entry.
func DecodeWeight(w float64) fn.Option[float64] {
	// NaN fails the comparison and lands in None.
	if !(w > 0) || math.IsInf(w, 1) {
		return fn.None[float64]()
	}

	return fn.Some(w)
}
