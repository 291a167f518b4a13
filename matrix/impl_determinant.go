// SPDX-License-Identifier: MIT

// Package matrix - determinant by cofactor (Laplace) expansion.
//
// Purpose:
//   - Expand along the first remaining row over explicit row/column index
//     sequences, never copying the matrix into minors.
//   - Keep every index sequence in a per-call arena (one buffer per depth),
//     so the recursion allocates O(n²) ints once instead of per minor.
//
// Complexity:
//   - Time O(n!) in the order n. Use ops.DeterminantElimination for large n.

package matrix

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// detArena holds the index sequences of one expansion.
// Depth d expands along rows[d] over the columns in cols[d].
type detArena struct {
	rows []int   // remaining rows; depth d drops rows[:d]
	cols [][]int // cols[d] holds the len(rows)-d columns still in play at depth d
}

// newDetArena preallocates one column buffer per depth.
func newDetArena(rows, cols []int) *detArena {
	n := len(cols)
	a := &detArena{rows: rows, cols: make([][]int, n)}
	for d := range a.cols {
		a.cols[d] = make([]int, 0, n-d)
	}
	a.cols[0] = append(a.cols[0], cols...)

	return a
}

// cofactor returns the determinant of the minor selected by a.rows[depth:]
// and a.cols[depth]. The sign of each term follows the position of the
// column inside the remaining sequence, not its absolute index.
func cofactor[T Number](m *Grid[T], a *detArena, depth int) T {
	cols := a.cols[depth]
	base := a.rows[depth] * m.c
	if len(cols) == 1 {
		return m.data[base+cols[0]]
	}

	var total, term T
	next := depth + 1
	for pos, col := range cols {
		// Remaining columns for the minor: cols without position pos.
		a.cols[next] = append(a.cols[next][:0], cols[:pos]...)
		a.cols[next] = append(a.cols[next], cols[pos+1:]...)

		term = m.data[base+col] * cofactor(m, a, next)
		if pos%2 == 0 {
			total += term
		} else {
			total -= term
		}
	}

	return total
}

// Minor returns the determinant of the square submatrix selected by the row
// and column index sequences, without materializing it.
//
// Implementation:
//   - Stage 1: validate non-nil, equal sequence lengths and index bounds.
//   - Stage 2: recursive cofactor expansion over the arena.
//
// Behavior highlights:
//   - Indices need not be sorted; the order of cols defines the sign pattern.
//   - Empty sequences yield 1 (the empty product).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(rows) != len(cols)), ErrOutOfRange.
//
// Complexity:
//   - Time O(k!) for k = len(rows), Space O(k²).
func Minor[T Number](m *Grid[T], rows, cols []int) (T, error) {
	var zero T
	if err := ValidateNotNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	if len(rows) != len(cols) {
		return zero, matrixErrorf(opDeterminant,
			fmt.Errorf("%d rows vs %d cols: %w", len(rows), len(cols), ErrDimensionMismatch))
	}
	for _, r := range rows {
		if r < 0 || r >= m.r {
			return zero, matrixErrorf(opDeterminant, fmt.Errorf("row index %d: %w", r, ErrOutOfRange))
		}
	}
	for _, c := range cols {
		if c < 0 || c >= m.c {
			return zero, matrixErrorf(opDeterminant, fmt.Errorf("col index %d: %w", c, ErrOutOfRange))
		}
	}
	if len(cols) == 0 {
		return 1, nil
	}

	return cofactor(m, newDetArena(rows, cols), 0), nil
}

// Determinant computes det(m) by cofactor expansion along the first row.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n!), Space O(n²).
func Determinant[T Number](m *Grid[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		var zero T

		return zero, matrixErrorf(opDeterminant, err)
	}

	return Minor(m, indexRange(0, m.r), indexRange(0, m.c))
}

// DeterminantConcurrent expands the top level of the cofactor tree in
// parallel, one goroutine per column of the first row, each with its own
// arena. Terms are summed in column order, so the result equals
// Determinant(m).
//
// Behavior highlights:
//   - ctx is checked before each top-level minor starts; a cancelled context
//     returns ctx.Err().
//   - At most GOMAXPROCS minors run at once.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, context errors.
func DeterminantConcurrent[T Number](ctx context.Context, m *Grid[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	n := m.r
	if n <= 1 {
		return Determinant(m)
	}

	terms := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for pos := 0; pos < n; pos++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cols := make([]int, 0, n-1)
			for c := 0; c < n; c++ {
				if c != pos {
					cols = append(cols, c)
				}
			}
			term := m.data[pos] * cofactor(m, newDetArena(indexRange(1, n-1), cols), 0)
			if pos%2 == 0 {
				terms[pos] = term
			} else {
				terms[pos] = zero - term
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}

	var total T
	for _, t := range terms {
		total += t
	}

	return total, nil
}
