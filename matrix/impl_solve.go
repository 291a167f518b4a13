// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Solve returns X such that a·X = b, by row-reducing the augmented system [a | b].
//
// Implementation:
//   - Stage 1: validate a.Rows == b.Rows.
//   - Stage 2: JoinColumns(a, b), then RREF.
//   - Stage 3: if any row's leading column falls in the b block, the row reads
//     0 = non-zero and the system is inconsistent.
//   - Stage 4: copy rows [0, a.Rows) × columns [a.Cols, a.Cols+b.Cols).
//
// Behavior highlights:
//   - For square full-rank a the result is the unique solution.
//   - For consistent rank-deficient systems the free variables come out as
//     whatever RREF left in the b block (particular solution with free
//     variables at zero); no null-space basis is produced.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNoSolution.
//
// Complexity:
//   - Time O(r*(ca+cb)*min(r, ca+cb)), Space O(r*(ca+cb)).
func Solve[T Float](a, b *Grid[T]) (*Grid[T], error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	aug, err := JoinColumns(a, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	reduce(aug) // aug is already a fresh grid; no second clone needed

	for row, lead := range LeadingColumns(aug) {
		if lead >= a.c {
			return nil, matrixErrorf(opSolve, fmt.Errorf("row %d reads 0 = %v: %w",
				row, aug.data[row*aug.c+lead], ErrNoSolution))
		}
	}

	return aug.Slice(0, a.r, a.c, b.c)
}
