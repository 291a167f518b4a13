// SPDX-License-Identifier: MIT
// Package matrix_test - reduced row-echelon form.

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/matrix"
)

func TestRREF_Known(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"full rank 2x2", "1 1;-1 1", "1 0;0 1"},
		{"rank one", "1 1;1 1", "1 1;0 0"},
		{"needs swap", "0 1;1 0", "1 0;0 1"},
		{"leading zero column", "0 2 4;0 1 3", "0 1 0;0 0 1"},
		{"free middle column", "1 2 3;2 4 7", "1 2 0;0 0 1"},
		{"tall", "1;2;3", "1;0;0"},
		{"zero", "0 0;0 0", "0 0;0 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.RREF(MustLiteral(t, tc.in))
			require.NoError(t, err)
			require.True(t, matrix.Equal(MustLiteral(t, tc.want), got), "got:\n%v", got)
		})
	}
}

func TestRREF_Identity(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			id, err := matrix.NewIdentity(n)
			require.NoError(t, err)
			got, err := matrix.RREF(id)
			require.NoError(t, err)
			require.True(t, matrix.Equal(id, got))
		})
	}
}

func TestRREF_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	m := MustLiteral(t, "0 2 4;3 1 3;1 1 1")
	before := m.Clone()
	_, err := matrix.RREF(m)
	require.NoError(t, err)
	require.True(t, matrix.Equal(before, m))
}

func TestRREF_Idempotent(t *testing.T) {
	t.Parallel()

	m := MustLiteral(t, "2 4 -2 2;4 9 -3 8;-2 -3 7 10")
	once, err := matrix.RREF(m)
	require.NoError(t, err)
	twice, err := matrix.RREF(once)
	require.NoError(t, err)
	require.True(t, matrix.Equal(once, twice), "once:\n%v\ntwice:\n%v", once, twice)
}

func TestRREF_EmptyAndNil(t *testing.T) {
	t.Parallel()

	got, err := matrix.RREF(MustDense(t, 0, 0))
	require.NoError(t, err)
	require.True(t, got.IsEmpty())

	_, err = matrix.RREF[float64](nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRREF_Float32(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromValues([]float32{2, 4, 1, 3}, 2)
	require.NoError(t, err)
	got, err := matrix.RREF(m)
	require.NoError(t, err)
	CompareExact(t, [][]float32{{1, 0}, {0, 1}}, got)
}

func TestLeadingColumns(t *testing.T) {
	t.Parallel()

	m := MustLiteral(t, "0 1 0;0 0 1;0 0 0")
	require.Equal(t, []int{1, 2, -1}, matrix.LeadingColumns(m))
	require.Empty(t, matrix.LeadingColumns(MustDense(t, 0, 0)))
}
