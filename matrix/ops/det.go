// SPDX-License-Identifier: MIT

package ops

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// DeterminantElimination computes det(m) by Gaussian elimination to upper
// triangular form, multiplying the pivots and flipping the sign per swap.
//
// Implementation:
//   - Stage 1: validate m and copy its rows into a private working set
//     (the caller's grid is untouched).
//   - Stage 2: per column c, take the first non-zero entry at or below row c
//     as pivot (naive pivoting, exact zero test), swap it up, eliminate below.
//   - Stage 3: a column without a pivot means det = 0.
//
// Behavior highlights:
//   - Agrees with matrix.Determinant up to floating-point rounding; exact on
//     inputs whose elimination stays in representable values.
//   - The 0×0 matrix has determinant 1.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func DeterminantElimination[T matrix.Float](m *matrix.Grid[T]) (T, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, fmt.Errorf("DeterminantElimination: %w", err)
	}
	n := m.Rows()
	rows := make([][]T, n)
	for i := range rows {
		rows[i], _ = m.Row(i) // in range by construction
	}

	det := T(1)
	var (
		c, r, j int
		pv, f   T
	)
	for c = 0; c < n; c++ {
		p := pivotRow(rows, c)
		if p < 0 {
			return 0, nil
		}
		if p != c {
			rows[c], rows[p] = rows[p], rows[c]
			det = -det
		}
		pv = rows[c][c]
		det *= pv
		for r = c + 1; r < n; r++ {
			if rows[r][c] == 0 {
				continue
			}
			f = rows[r][c] / pv
			for j = c; j < n; j++ {
				rows[r][j] -= f * rows[c][j]
			}
		}
	}

	return det, nil
}

// pivotRow returns the first row r >= c with a non-zero entry in column c,
// or -1.
func pivotRow[T matrix.Float](rows [][]T, c int) int {
	for r := c; r < len(rows); r++ {
		if rows[r][c] != 0 {
			return r
		}
	}

	return -1
}
