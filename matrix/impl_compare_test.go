// SPDX-License-Identifier: MIT
// Package matrix_test - equality and ordering overlays.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	a := MustLiteral(t, "1 2;3 4")
	require.True(t, matrix.Equal(a, MustLiteral(t, "1 2;3 4")))
	require.False(t, matrix.Equal(a, MustLiteral(t, "1 2;3 5")))

	// Shape mismatch is simply "not equal", even with the same values.
	require.False(t, matrix.Equal(a, MustLiteral(t, "1 2 3 4")))
	require.False(t, matrix.Equal(a, a.Transpose()))

	require.True(t, matrix.Equal[float64](nil, nil))
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal(MustDense(t, 0, 0), MustDense(t, 0, 3)))
}

func TestOrderingOverlays(t *testing.T) {
	t.Parallel()

	a := MustLiteral(t, "1 5;3 3")
	b := MustLiteral(t, "2 4;3 1")

	cases := []struct {
		name string
		op   func(a, b *matrix.Dense) (*matrix.Grid[bool], error)
		want [][]bool
	}{
		{"eq", matrix.ElementEqual[float64], [][]bool{{false, false}, {true, false}}},
		{"gt", matrix.GreaterThan[float64], [][]bool{{false, true}, {false, true}}},
		{"ge", matrix.GreaterEqual[float64], [][]bool{{false, true}, {true, true}}},
		{"lt", matrix.LessThan[float64], [][]bool{{true, false}, {false, false}}},
		{"le", matrix.LessEqual[float64], [][]bool{{true, false}, {true, false}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(a, b)
			require.NoError(t, err)
			CompareExact(t, tc.want, got)

			_, err = tc.op(a, MustLiteral(t, "1 2"))
			AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}
}

func TestOrderingOverlays_Strings(t *testing.T) {
	t.Parallel()

	a, err := matrix.FromValues([]string{"apple", "pear"}, 1)
	require.NoError(t, err)
	b, err := matrix.FromValues([]string{"banana", "fig"}, 1)
	require.NoError(t, err)

	lt, err := matrix.LessThan(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]bool{{true, false}}, lt)
}

func TestAllTrue(t *testing.T) {
	t.Parallel()

	a := MustLiteral(t, "1 2;3 4")
	ge, err := matrix.GreaterEqual(a, a)
	require.NoError(t, err)
	require.True(t, matrix.AllTrue(ge))

	gt, err := matrix.GreaterThan(a, a)
	require.NoError(t, err)
	require.False(t, matrix.AllTrue(gt))

	empty, err := matrix.NewGrid[bool](0, 0)
	require.NoError(t, err)
	require.True(t, matrix.AllTrue(empty))
	require.False(t, matrix.AllTrue(nil))
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustLiteral(t, "1 2;3 4")
	b := MustLiteral(t, "1.0000000001 2;3 4")

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	inf := MustLiteral(t, "+Inf", matrix.WithNoValidateNaNInf())
	ok, err = matrix.AllClose(inf, inf, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	nan := MustLiteral(t, "NaN", matrix.WithNoValidateNaNInf())
	ok, err = matrix.AllClose(nan, nan, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, 0, math.NaN())
	AssertErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustLiteral(t, "1 2"), 0, 0)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}
