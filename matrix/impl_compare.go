// SPDX-License-Identifier: MIT

// Package matrix - equality and ordering overlays.
//
// Equal answers "same matrix?" with a plain bool and never errors. The
// element-wise overlays answer per cell and return a Grid[bool] of the same
// shape; they demand identical shapes. Comparisons are exact: round floats
// first (see Round) when approximate equality is wanted.

package matrix

import "cmp"

// Equal reports whether a and b have the same shape and all corresponding
// elements compare equal. A shape mismatch is simply "not equal". Two nil
// grids are equal; nil and non-nil are not.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// ElementEqual returns the cell-wise a == b.
func ElementEqual[T comparable](a, b *Grid[T]) (*Grid[bool], error) {
	return zipWith(a, b, opCompare, func(x, y T) bool { return x == y })
}

// GreaterThan returns the cell-wise a > b.
func GreaterThan[T cmp.Ordered](a, b *Grid[T]) (*Grid[bool], error) {
	return zipWith(a, b, opCompare, func(x, y T) bool { return x > y })
}

// GreaterEqual returns the cell-wise a >= b.
func GreaterEqual[T cmp.Ordered](a, b *Grid[T]) (*Grid[bool], error) {
	return zipWith(a, b, opCompare, func(x, y T) bool { return x >= y })
}

// LessThan returns the cell-wise a < b.
func LessThan[T cmp.Ordered](a, b *Grid[T]) (*Grid[bool], error) {
	return zipWith(a, b, opCompare, func(x, y T) bool { return x < y })
}

// LessEqual returns the cell-wise a <= b.
func LessEqual[T cmp.Ordered](a, b *Grid[T]) (*Grid[bool], error) {
	return zipWith(a, b, opCompare, func(x, y T) bool { return x <= y })
}

// AllTrue reports whether every cell of a comparison grid is true.
// The empty grid is vacuously true.
func AllTrue(g *Grid[bool]) bool {
	if g == nil {
		return false
	}
	for _, v := range g.data {
		if !v {
			return false
		}
	}

	return true
}
