// SPDX-License-Identifier: MIT
// Package matrix_test - linear system solving over the augmented matrix.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestSolve_Square(t *testing.T) {
	t.Parallel()

	a := MustLiteral(t, "3 1;1 3")
	b := MustLiteral(t, "7 5;5 7")

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	rounded, err := matrix.Round(x, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustLiteral(t, "2 1;1 2"), rounded), "x:\n%v", x)

	// A·X reproduces B after rounding.
	ax, err := matrix.Mul(a, x)
	require.NoError(t, err)
	ax, err = matrix.Round(ax, 6)
	require.NoError(t, err)
	require.True(t, matrix.Equal(b, ax))

	// Operands are untouched.
	require.True(t, matrix.Equal(MustLiteral(t, "3 1;1 3"), a))
	require.True(t, matrix.Equal(MustLiteral(t, "7 5;5 7"), b))
}

func TestSolve_IdentityIsExact(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	b := MustLiteral(t, "1 2;3 4;5 6")
	x, err := matrix.Solve(id, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(b, x))
}

func TestSolve_ThreeByThree(t *testing.T) {
	t.Parallel()

	a := MustLiteral(t, "2 1 -1;-3 -1 2;-2 1 2")
	b := MustLiteral(t, "8;-11;-3")
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	CompareClose(t, MustLiteral(t, "2;3;-1"), x, rtolTiny, 1e-9)
}

func TestSolve_NoSolution(t *testing.T) {
	t.Parallel()

	_, err := matrix.Solve(MustLiteral(t, "1 1;1 1"), MustLiteral(t, "1;2"))
	AssertErrorIs(t, err, matrix.ErrNoSolution)

	_, err = matrix.Solve(MustLiteral(t, "1 2;2 4;0 0"), MustLiteral(t, "3;6;1"))
	AssertErrorIs(t, err, matrix.ErrNoSolution)
}

func TestSolve_RankDeficientConsistent(t *testing.T) {
	t.Parallel()

	// x + y = 2 with the free variable left at zero.
	x, err := matrix.Solve(MustLiteral(t, "1 1;2 2"), MustLiteral(t, "2;4"))
	require.NoError(t, err)
	require.True(t, matrix.Equal(MustLiteral(t, "2;0"), x), "x:\n%v", x)
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Solve(MustLiteral(t, "1 0;0 1"), MustLiteral(t, "1;2;3"))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(nil, MustLiteral(t, "1"))
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Solve(MustLiteral(t, "1"), nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
