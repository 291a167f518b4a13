// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) with m = L×U.
//
// Implementation:
//   - Stage 1: validate m is non-nil and square.
//   - Stage 2: for each pivot i, fill row i of U, then column i of L below it.
//
// Behavior highlights:
//   - No pivoting: a zero on U's diagonal stops the decomposition with
//     ErrSingular even when a row swap would have helped.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²) for L and U.
func LU[T matrix.Float](m *matrix.Grid[T]) (*matrix.Grid[T], *matrix.Grid[T], error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	n := m.Rows()

	L, err := matrix.Identity[T](n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	U, err := matrix.ZerosLike(m)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}

	var (
		i, j, k    int
		sum        T
		lVal, uVal T
		aVal       T
		uDiag      T
	)
	for i = 0; i < n; i++ {
		// Row i of U for columns j >= i.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lVal, _ = L.At(i, k)
				uVal, _ = U.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ = m.At(i, j)
			_ = U.Set(i, j, aVal-sum)
		}

		uDiag, _ = U.At(i, i)
		if uDiag == 0 {
			return nil, nil, fmt.Errorf("LU: zero pivot at %d: %w", i, matrix.ErrSingular)
		}

		// Column i of L for rows j > i.
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				lVal, _ = L.At(j, k)
				uVal, _ = U.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ = m.At(j, i)
			_ = L.Set(j, i, (aVal-sum)/uDiag)
		}
	}

	return L, U, nil
}
