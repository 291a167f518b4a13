// SPDX-License-Identifier: MIT
// Package matrix: element-wise reductions and sanitizers.
//
// Purpose:
//   - AllClose is the tolerant counterpart of the exact Equal; it exists for
//     callers (and tests) that compare floating-point results without rounding.
//   - RowSums/ColSums/Clip are small reductions composed from MatVec/Map.
//
// Determinism:
//   - Fixed loop orders; no allocation beyond the result.

package matrix

import (
	"fmt"
	"math"
)

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Equal infinities compare close; NaN is never close to anything.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose[T Float](a, b *Grid[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var av, bv float64
	for idx := range a.data {
		av, bv = float64(a.data[idx]), float64(b.data[idx])
		if av == bv {
			continue // covers equal infinities
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) || math.IsNaN(av-bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// RowSums returns r where r[i] = sum_j m[i,j]. Implemented as MatVec(m, ones).
func RowSums[T Number](m *Grid[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	ones := make([]T, m.c)
	for j := range ones {
		ones[j] = 1
	}

	return MatVec(m, ones)
}

// ColSums returns c where c[j] = sum_i m[i,j]. Implemented as RowSums(mᵀ).
func ColSums[T Number](m *Grid[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}

	return RowSums(m.Transpose())
}

// Clip returns a copy of m with elements clamped into [lo, hi].
// If lo > hi the bounds are swapped.
func Clip[T Number](m *Grid[T], lo, hi T) (*Grid[T], error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	res, err := Map(m, func(v T) T { return min(max(v, lo), hi) })
	if err != nil {
		return nil, fmt.Errorf("Clip: %w", err)
	}

	return res, nil
}
