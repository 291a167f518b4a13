// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Every composition (SubMatrix, Slice, Clone, Transpose, joins) copies into a fresh
//     buffer; no two Grids ever share storage.
//   - The only public mutator is Set; row operations stay private to row reduction.
//
// Complexity quicksheet:
//   - NewGrid: O(r*c) zero-init; At/Set: O(1); Clone/Transpose: O(r*c); SubMatrix: O(r'*c').

package matrix

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxSubMatrix = "SubMatrix" // ctor tag for Grid.SubMatrix
	ctxSlice     = "Slice"     // ctor tag for Grid.Slice
	ctxRow       = "Row"       // accessor tag for Grid.Row
	ctxCol       = "Col"       // accessor tag for Grid.Col
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
// The sentinel is preserved via %w so errors.Is keeps working.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a rectangular row-major matrix of any element type.
//   - r,c hold dimensions (rows, cols); r == 0 implies c == 0, while an
//     r×0 Grid keeps its row count.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Grid is the structural tier: storage, indexing and shape-changing copies.
// Arithmetic lives in package functions constrained by Number/Float.
type Grid[T any] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[float64])(nil)

// NewGrid creates a rows×cols zero-valued Grid.
//
// Implementation:
//   - Stage 1: reject negative sizes with ErrInvalidDimensions.
//   - Stage 2: normalise 0×c to 0×0 and allocate.
//
// Behavior highlights:
//   - A zero row count implies a zero column count. The converse does not
//     hold: NewGrid(3, 0) has 3 rows and no columns, and its transpose is 0×0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewGrid[T any](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return newGrid[T](rows, cols), nil
}

// newGrid allocates without validation; callers guarantee non-negative sizes.
func newGrid[T any](rows, cols int) *Grid[T] {
	if rows == 0 {
		cols = 0
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}
}

// FromValues bulk-loads a flat sequence in row-major order: element (i, j)
// comes from values[i*cols+j] where cols = len(values)/rows.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0, when rows == 0 but values is
//     non-empty, or when len(values) is not a multiple of rows.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromValues[T any](values []T, rows int) (*Grid[T], error) {
	return FromValuesOrder(values, rows, RowMajor)
}

// FromValuesOrder is FromValues with an explicit fill order. ColumnMajor
// fills (i, j) from values[j*rows+i], which makes it the inverse of Values().
func FromValuesOrder[T any](values []T, rows int, order FillOrder) (*Grid[T], error) {
	n := len(values)
	if rows < 0 {
		return nil, fmt.Errorf("FromValues: rows=%d: %w", rows, ErrInvalidDimensions)
	}
	if rows == 0 {
		if n != 0 {
			return nil, fmt.Errorf("FromValues: %d values over 0 rows: %w", n, ErrInvalidDimensions)
		}

		return newGrid[T](0, 0), nil
	}
	if n%rows != 0 {
		return nil, fmt.Errorf("FromValues: %d values over %d rows: %w", n, rows, ErrInvalidDimensions)
	}

	cols := n / rows
	g := newGrid[T](rows, cols)
	switch order {
	case RowMajor:
		copy(g.data, values)
	case ColumnMajor:
		var i, j int
		for j = 0; j < cols; j++ {
			for i = 0; i < rows; i++ {
				g.data[i*cols+j] = values[j*rows+i]
			}
		}
	default:
		return nil, fmt.Errorf("FromValues: unknown fill order %d: %w", int(order), ErrInvalidDimensions)
	}

	return g, nil
}

// FromRows builds a Grid from a slice of rows. Every row must have the same
// length; a jagged input yields ErrInvalidDimensions.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return newGrid[T](0, 0), nil
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(rows[i]), cols, ErrInvalidDimensions)
		}
	}

	g := newGrid[T](len(rows), cols)
	for i, row := range rows {
		copy(g.data[i*g.c:(i+1)*g.c], row)
	}

	return g, nil
}

// Rows returns the row count. Complexity: O(1).
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the column count. Complexity: O(1).
func (g *Grid[T]) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (g *Grid[T]) Shape() (rows, cols int) { return g.r, g.c }

// IsSquare reports Rows() == Cols(). The empty Grid is square.
func (g *Grid[T]) IsSquare() bool { return g.r == g.c }

// IsEmpty reports a Grid with no elements (0×0 or r×0).
func (g *Grid[T]) IsEmpty() bool { return g.r == 0 || g.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (g *Grid[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*g.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns the zero value and a wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (g *Grid[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= g.r {
		return nil, gridErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return slices.Clone(g.data[i*g.c : (i+1)*g.c]), nil
}

// Col returns a copy of column j.
func (g *Grid[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= g.c {
		return nil, gridErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, g.r)
	for i := 0; i < g.r; i++ {
		out[i] = g.data[i*g.c+j]
	}

	return out, nil
}

// SubMatrix materializes a copy using explicit index sets: element (a, b)
// of the result equals g(rowIdx[a], colIdx[b]).
//
// Implementation:
//   - Stage 1: bounds-check every index up front (no partial result on error).
//   - Stage 2: allocate len(rowIdx)×len(colIdx) and gather with direct offset math.
//
// Behavior highlights:
//   - Indices need not be sorted or contiguous; duplicates repeat rows/cols.
//   - The result never aliases g.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (g *Grid[T]) SubMatrix(rowIdx, colIdx []int) (*Grid[T], error) {
	for _, ri := range rowIdx {
		if ri < 0 || ri >= g.r {
			return nil, fmt.Errorf("Grid.%s: row index %d: %w", ctxSubMatrix, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colIdx {
		if cj < 0 || cj >= g.c {
			return nil, fmt.Errorf("Grid.%s: col index %d: %w", ctxSubMatrix, cj, ErrOutOfRange)
		}
	}

	res := newGrid[T](len(rowIdx), len(colIdx))
	if res.IsEmpty() {
		return res, nil
	}
	var a, b, src, dst int
	for a = 0; a < res.r; a++ {
		src = rowIdx[a] * g.c // row base in source
		dst = a * res.c       // row base in result
		for b = 0; b < res.c; b++ {
			res.data[dst+b] = g.data[src+colIdx[b]]
		}
	}

	return res, nil
}

// Slice copies the contiguous block [r0, r0+rows) × [c0, c0+cols).
// It is SubMatrix over two ranges.
func (g *Grid[T]) Slice(r0, rows, c0, cols int) (*Grid[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > g.r || c0+cols > g.c {
		return nil, fmt.Errorf("Grid.%s(%d,%d,%d,%d): %w", ctxSlice, r0, rows, c0, cols, ErrOutOfRange)
	}

	return g.SubMatrix(indexRange(r0, rows), indexRange(c0, cols))
}

// Clone returns a deep copy: SubMatrix over the identity index sequences.
// Complexity: O(r*c).
func (g *Grid[T]) Clone() *Grid[T] {
	res, _ := g.SubMatrix(indexRange(0, g.r), indexRange(0, g.c)) // identity indices cannot fail

	return res
}

// Transpose returns a new Grid with the two index roles swapped (gᵀ).
// The receiver is never mutated.
// Complexity: O(r*c).
func (g *Grid[T]) Transpose() *Grid[T] {
	res := newGrid[T](g.c, g.r)
	var i, j, base int
	for i = 0; i < g.r; i++ {
		base = i * g.c
		for j = 0; j < g.c; j++ {
			res.data[j*g.r+i] = g.data[base+j]
		}
	}

	return res
}

// swapRows exchanges rows r1 and r2 in place. Callers guarantee both
// indices are in range and that g is a private working copy.
func (g *Grid[T]) swapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	a := g.data[r1*g.c : (r1+1)*g.c]
	b := g.data[r2*g.c : (r2+1)*g.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// All yields every element in column-major order: down column 0, then down
// column 1, and so on. Ranging over the sequence again restarts it from the
// first element.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var i, j int
		for j = 0; j < g.c; j++ {
			for i = 0; i < g.r; i++ {
				if !yield(g.data[i*g.c+j]) {
					return
				}
			}
		}
	}
}

// Values materializes All() into a slice (column-major).
func (g *Grid[T]) Values() []T {
	out := make([]T, 0, len(g.data))

	return slices.AppendSeq(out, g.All())
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// It stops early when f returns false.
func (g *Grid[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < g.r; i++ {
		base = i * g.c
		for j = 0; j < g.c; j++ {
			if !f(i, j, g.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed row per line for diagnostics.
func (g *Grid[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.c
		for j = 0; j < g.c; j++ {
			fmt.Fprintf(&b, "%v", g.data[base+j])
			if j+1 < g.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Map returns a new Grid of the same shape with f applied to every element.
// It is the bridge between tiers (e.g. float64 → bool for comparisons).
func Map[T, U any](g *Grid[T], f func(T) U) (*Grid[U], error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, err
	}
	res := newGrid[U](g.r, g.c)
	for k, v := range g.data {
		res.data[k] = f(v)
	}

	return res, nil
}

// JoinRows stacks b under a. Both must have the same column count, so a 0×0
// operand only joins with another grid that has no columns.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O((ra+rb)*c), Space O((ra+rb)*c).
func JoinRows[T any](a, b *Grid[T]) (*Grid[T], error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opJoinRows, err)
	}
	if err := ValidateSameCols(a, b); err != nil {
		return nil, matrixErrorf(opJoinRows, err)
	}

	res := newGrid[T](a.r+b.r, a.c)
	copy(res.data, a.data)
	copy(res.data[len(a.data):], b.data)

	return res, nil
}

// JoinColumns places b to the right of a. Both must have the same row
// count. Solve uses it to build the augmented system [A | b].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func JoinColumns[T any](a, b *Grid[T]) (*Grid[T], error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opJoinColumns, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opJoinColumns, err)
	}

	res := newGrid[T](a.r, a.c+b.c)
	var i, dst int
	for i = 0; i < a.r; i++ {
		dst = i * res.c
		copy(res.data[dst:dst+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(res.data[dst+a.c:dst+res.c], b.data[i*b.c:(i+1)*b.c])
	}

	return res, nil
}

// indexRange returns [from, from+n) as an index sequence.
func indexRange(from, n int) []int {
	idx := make([]int, n)
	for k := range idx {
		idx[k] = from + k
	}

	return idx
}
