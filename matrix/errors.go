// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No algorithm
// panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with their operation tag
// (fmt.Errorf("Mul: %w", ErrDimensionMismatch)); callers use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> algorithmic (no solution, singular).

var (
	// ErrInvalidDimensions indicates a negative size, or a bulk-load whose
	// value count is not a multiple of the declared row count.
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. Add/Sub different shapes, Mul where a.Cols != b.Rows, a join over
	// unequal edges, Solve with a.Rows != b.Rows, or a non-square input to
	// Determinant/Pow.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNoSolution is returned by Solve when the reduced augmented system
	// contains a row 0 = non-zero.
	ErrNoSolution = errors.New("matrix: system has no solution")

	// ErrNilMatrix indicates that a nil *Grid (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrFormat is returned by Parse on inconsistent row lengths or a
	// malformed numeric token.
	ErrFormat = errors.New("matrix: malformed matrix literal")

	// ErrInvalidSeparator is returned by ValidateSeparators for a rune that
	// could be part of a number, or for equal row and column separators.
	ErrInvalidSeparator = errors.New("matrix: invalid separator")

	// ErrNaNInf signals a NaN or ±Inf token where the numeric policy requires
	// finite values (Parse with the default policy).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeExponent is returned by Pow for k < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrSingular is returned when an operation requires an invertible matrix
	// (Inverse, LU without pivoting) and a zero pivot is met.
	ErrSingular = errors.New("matrix: singular matrix")
)
