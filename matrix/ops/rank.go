// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// Rank returns the number of pivot rows in RREF(m). Zero tests are exact,
// so round noisy inputs first.
func Rank[T matrix.Float](m *matrix.Grid[T]) (int, error) {
	r, err := matrix.RREF(m)
	if err != nil {
		return 0, fmt.Errorf("Rank: %w", err)
	}
	rank := 0
	for _, lead := range matrix.LeadingColumns(r) {
		if lead >= 0 {
			rank++
		}
	}

	return rank, nil
}

// Nullity returns Cols(m) - Rank(m), the dimension of the null space.
func Nullity[T matrix.Float](m *matrix.Grid[T]) (int, error) {
	rank, err := Rank(m)
	if err != nil {
		return 0, fmt.Errorf("Nullity: %w", err)
	}

	return m.Cols() - rank, nil
}

// Trace returns the sum of the diagonal of a square matrix.
func Trace[T matrix.Number](m *matrix.Grid[T]) (T, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, fmt.Errorf("Trace: %w", err)
	}
	var sum, v T
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		sum += v
	}

	return sum, nil
}
