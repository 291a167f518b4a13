// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations and reduced row-echelon form.
//
// Purpose:
//   - Keep the three elementary row operations (swapRows, scaleRow,
//     addScaledRow) unexported and unchecked; they only ever run on a grid
//     that reduce owns.
//   - Provide RREF, which clones first, so the caller's matrix is never touched.
//
// Numeric policy:
//   - Zero tests are exact (v == 0). There is no epsilon: near-zero residues
//     are treated as pivots. Round the input first if that matters.
//   - Pivot choice is naive: the first non-zero entry at or below the pivot row.

package matrix

// scaleRow multiplies row r by factor in place.
func scaleRow[T Number](m *Grid[T], r int, factor T) {
	row := m.data[r*m.c : (r+1)*m.c]
	for j := range row {
		row[j] *= factor
	}
}

// addScaledRow adds factor × row src into row dst in place.
func addScaledRow[T Number](m *Grid[T], src, dst int, factor T) {
	s := m.data[src*m.c : (src+1)*m.c]
	d := m.data[dst*m.c : (dst+1)*m.c]
	for j := range d {
		d[j] += factor * s[j]
	}
}

// RREF returns the reduced row-echelon form of m. The input is cloned first
// and never mutated.
//
// Implementation:
//   - Stage 1: clone m into a working grid.
//   - Stage 2: for each column c (while pivot rows remain):
//     find the first row j ≥ pivotRow with a non-zero entry in c; if none, c is
//     a free column; otherwise swap j into pivotRow, scale it so the pivot is
//     exactly 1, clear column c in every other row, advance pivotRow.
//
// Behavior highlights:
//   - Every pivot is 1 and every pivot column is 0 elsewhere.
//   - Idempotent on exact inputs: RREF(RREF(m)) equals RREF(m).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c) for the clone.
func RREF[T Float](m *Grid[T]) (*Grid[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	w := m.Clone()
	reduce(w)

	return w, nil
}

// reduce runs the RREF sweep on w in place.
func reduce[T Float](w *Grid[T]) {
	var (
		c, j, k  int
		pivotRow int
		pivot, f T
	)
	for c = 0; c < w.c && pivotRow < w.r; c++ {
		// Stage A: locate the first non-zero entry at or below pivotRow.
		for j = pivotRow; j < w.r && w.data[j*w.c+c] == 0; j++ {
		}
		if j == w.r {
			continue // no pivot in this column
		}

		// Stage B: move it into place and normalise to exactly 1.
		w.swapRows(pivotRow, j)
		pivot = w.data[pivotRow*w.c+c]
		scaleRow(w, pivotRow, 1/pivot)
		w.data[pivotRow*w.c+c] = 1

		// Stage C: eliminate column c from every other row, above and below.
		for k = 0; k < w.r; k++ {
			if k == pivotRow {
				continue
			}
			f = w.data[k*w.c+c]
			if f == 0 {
				continue
			}
			addScaledRow(w, pivotRow, k, -f)
		}

		pivotRow++
	}
}

// LeadingColumns returns, for each row, the column of its first non-zero
// entry, or -1 for an all-zero row.
func LeadingColumns[T Float](m *Grid[T]) []int {
	out := make([]int, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		out[i] = -1
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if m.data[base+j] != 0 {
				out[i] = j

				break
			}
		}
	}

	return out
}
