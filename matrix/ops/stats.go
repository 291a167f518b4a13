// SPDX-License-Identifier: MIT

// Package ops - column statistics composed from the matrix kernels.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)  // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Zero-size inputs are a no-op for centering and a 0×0 covariance.

package ops

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// CenterColumns subtracts the per-column mean from every element.
//
// Implementation:
//   - Stage 1: means = ColSums(X) / r.
//   - Stage 2: Xc = X - 1·meansᵀ, built as JoinRows of r copies of the mean row.
//
// Returns:
//   - the centered copy (X itself is untouched) and the column means.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns[T matrix.Float](x *matrix.Grid[T]) (*matrix.Grid[T], []T, error) {
	sums, err := matrix.ColSums(x)
	if err != nil {
		return nil, nil, fmt.Errorf("CenterColumns: %w", err)
	}
	r, c := x.Shape()
	if r == 0 {
		return x.Clone(), sums, nil
	}

	means := make([]T, c)
	for j, s := range sums {
		means[j] = s / T(r)
	}
	meanRow, err := matrix.FromValues(means, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("CenterColumns: %w", err)
	}
	broadcast := meanRow
	for i := 1; i < r; i++ {
		if broadcast, err = matrix.JoinRows(broadcast, meanRow); err != nil {
			return nil, nil, fmt.Errorf("CenterColumns: %w", err)
		}
	}
	xc, err := matrix.Sub(x, broadcast)
	if err != nil {
		return nil, nil, fmt.Errorf("CenterColumns: %w", err)
	}

	return xc, means, nil
}

// Covariance returns the c×c sample covariance of the columns of X together
// with the column means used for centering.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when X has columns but
//     fewer than two rows.
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func Covariance[T matrix.Float](x *matrix.Grid[T]) (*matrix.Grid[T], []T, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}
	r, c := x.Shape()
	if c == 0 {
		empty, _ := matrix.NewGrid[T](0, 0)

		return empty, []T{}, nil
	}
	if r < 2 {
		return nil, nil, fmt.Errorf("Covariance: %d observations: %w", r, matrix.ErrDimensionMismatch)
	}

	xc, means, err := CenterColumns(x)
	if err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}
	g, err := matrix.Mul(xc.Transpose(), xc)
	if err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}
	cov, err := matrix.Scale(g, 1/T(r-1))
	if err != nil {
		return nil, nil, fmt.Errorf("Covariance: %w", err)
	}

	return cov, means, nil
}
