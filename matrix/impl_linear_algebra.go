// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic layer over Grid: element-wise
// addition and subtraction, matrix multiplication, scalar scaling, powers and
// rounding. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical arithmetic kernels used across the package and by ops/.
//   - Define operation tags and shared helpers for determinism and error reporting.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates exactly one result.
//   - Kernels index the flat row-major buffers directly (no per-element bounds checks).

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opScaleAdd    = "ScaleAdd"
	opMul         = "Mul"
	opScale       = "Scale"
	opHadamard    = "Hadamard"
	opMatVec      = "MatVec"
	opPow         = "Pow"
	opRound       = "Round"
	opJoinRows    = "JoinRows"
	opJoinColumns = "JoinColumns"
	opDeterminant = "Determinant"
	opRREF        = "RREF"
	opSolve       = "Solve"
	opCompare     = "Compare"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith combines two same-shape grids element by element into a fresh grid.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both backing slices.
//
// Behavior highlights:
//   - Shared by Add/Sub/Hadamard/ScaleAdd and the comparison overlays, so all
//     of them agree on validation order and error shape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func zipWith[T, U any](a, b *Grid[T], opTag string, f func(x, y T) U) (*Grid[U], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newGrid[U](a.r, a.c)
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = f(a.data[idx], b.data[idx])
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Grid[T]) (*Grid[T], error) {
	return zipWith(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub[T Number](a, b *Grid[T]) (*Grid[T], error) {
	return zipWith(a, b, opSub, func(x, y T) T { return x - y })
}

// ScaleAdd computes C = A + alpha*B in one pass.
func ScaleAdd[T Number](a, b *Grid[T], alpha T) (*Grid[T], error) {
	return zipWith(a, b, opScaleAdd, func(x, y T) T { return x + alpha*y })
}

// Hadamard computes the element-wise product (a ⊙ b) with a fresh result.
func Hadamard[T Number](a, b *Grid[T]) (*Grid[T], error) {
	return zipWith(a, b, opHadamard, func(x, y T) T { return x * y })
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loop; one allocation for C.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Grid[T]) (*Grid[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newGrid[T](aRows, bCols)
	if res.IsEmpty() {
		return res, nil
	}

	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// a.data layout: i*aCols + k; b.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new grid whose elements are alpha * m[i,j].
// Scaling always succeeds for a non-nil input.
func Scale[T Number](m *Grid[T], alpha T) (*Grid[T], error) {
	res, err := Map(m, func(v T) T { return alpha * v })
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x of length m.Cols().
func MatVec[T Number](m *Grid[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.r)
	var i, j, base int
	var sum T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		sum = 0
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Pow returns m^k by repeated multiplication; m^0 is the identity.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNegativeExponent (k < 0).
//
// Complexity:
//   - Time O(k*n³), Space O(n²). The loop is iterative, so no stack depth
//     grows with k.
func Pow[T Number](m *Grid[T], k int) (*Grid[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("k=%d: %w", k, ErrNegativeExponent))
	}

	res := identity[T](m.r)
	var err error
	for ; k > 0; k-- {
		if res, err = Mul(res, m); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return res, nil
}

// Round returns a copy of m with every element rounded to the given number
// of decimal places, half to even (2.5 → 2, 0.125 → 0.12). Negative decimals
// round to tens, hundreds, and so on.
//
// Behavior highlights:
//   - Intended to normalise floating-point solver output before exact Equal.
//   - An element is returned unchanged when the scale 10^decimals is
//     infinite or when |v·10^decimals| ≥ 2^52: it is already integral at that
//     scale, and scaling it further would overflow.
func Round[T Float](m *Grid[T], decimals int) (*Grid[T], error) {
	p := math.Pow(10, float64(decimals))
	res, err := Map(m, func(v T) T {
		if p == 0 {
			return 0 // 10^decimals underflowed: every finite value rounds to 0
		}
		if math.IsInf(p, 0) {
			return v
		}
		x := float64(v) * p
		if math.IsInf(x, 0) || math.IsNaN(x) || math.Abs(x) >= roundExactLimit {
			return v
		}

		return T(math.RoundToEven(x) / p)
	})
	if err != nil {
		return nil, matrixErrorf(opRound, err)
	}

	return res, nil
}

// roundExactLimit is 2^52: from here on every float64 is an integer.
const roundExactLimit = 1 << 52

// identity builds I_n for any numeric element type.
func identity[T Number](n int) *Grid[T] {
	id := newGrid[T](n, n)
	for i := 0; i < id.r; i++ {
		id.data[i*id.c+i] = 1
	}

	return id
}
