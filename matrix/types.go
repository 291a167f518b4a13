// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints and small shared types.
// The store itself is structural (any element type); each capability tier
// below narrows what an operation may assume about T.
package matrix

// Integer covers every built-in signed and unsigned integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float covers the fixed-width floating-point kinds. Operations that divide
// (RREF, Solve) or round require it.
type Float interface {
	~float32 | ~float64
}

// Number is the arithmetic tier: Add, Sub, Mul, Scale, Pow, Determinant.
type Number interface {
	Integer | Float
}

// FillOrder selects how a flat value sequence is laid into a Grid.
type FillOrder int

const (
	// RowMajor fills (i, j) from values[i*cols+j]. Canonical order.
	RowMajor FillOrder = iota
	// ColumnMajor fills (i, j) from values[j*rows+i]; it is the inverse of All().
	ColumnMajor
)

// String implements fmt.Stringer.
func (o FillOrder) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// Dense is the float64 instantiation used by the parser, factories and CLI.
type Dense = Grid[float64]
