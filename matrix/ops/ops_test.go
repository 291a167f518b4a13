// SPDX-License-Identifier: MIT

package ops_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/matrix/ops"
)

func lit(t *testing.T, text string) *matrix.Dense {
	t.Helper()
	m, err := matrix.Parse(text)
	require.NoError(t, err)

	return m
}

func requireClose(t *testing.T, want, got *matrix.Dense) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 1e-9, 1e-9)
	require.NoError(t, err)
	require.True(t, ok, "got:\n%v\nwant:\n%v", got, want)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	m := lit(t, "4 7;2 6")
	inv, err := ops.Inverse(m)
	require.NoError(t, err)
	requireClose(t, lit(t, "0.6 -0.7;-0.2 0.4"), inv)

	prod, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	requireClose(t, id, prod)
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := ops.Inverse(lit(t, "1 2;2 4"))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = ops.Inverse(lit(t, "1 2 3"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = ops.Inverse[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLU(t *testing.T) {
	t.Parallel()

	m := lit(t, "4 3;6 3")
	L, U, err := ops.LU(m)
	require.NoError(t, err)
	requireClose(t, lit(t, "1 0;1.5 1"), L)
	requireClose(t, lit(t, "4 3;0 -1.5"), U)

	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	requireClose(t, m, prod)
}

func TestLU_Errors(t *testing.T) {
	t.Parallel()

	// No pivoting: a leading zero stops the decomposition.
	_, _, err := ops.LU(lit(t, "0 1;1 0"))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, _, err = ops.LU(lit(t, "1 2"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDeterminantElimination(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"1 2;3 4", -2},
		{"0 1;1 0", -1},
		{"1 2 3;4 5 6;7 8 9", 0},
		{"4 3 2 1;9 8 7 6;12 21 12 43;97 1 32 1", -19820},
	}
	for _, tc := range cases {
		got, err := ops.DeterminantElimination(lit(t, tc.in))
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-6)
	}

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	d, err := ops.DeterminantElimination(empty)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	_, err = ops.DeterminantElimination(lit(t, "1 2"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestDeterminantElimination_AgreesWithCofactor checks both determinant
// routines and gonum's LU on the same random integer matrices.
func TestDeterminantElimination_AgreesWithCofactor(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(99))
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			vals := make([]float64, n*n)
			for k := range vals {
				vals[k] = float64(rng.Intn(11) - 5)
			}
			m, err := matrix.FromValues(vals, n)
			require.NoError(t, err)

			cof, err := matrix.Determinant(m)
			require.NoError(t, err)
			elim, err := ops.DeterminantElimination(m)
			require.NoError(t, err)
			oracle := mat.Det(mat.NewDense(n, n, vals))

			require.InDelta(t, cof, elim, 1e-6)
			require.InDelta(t, oracle, cof, 1e-6)
		})
	}
}

func TestRankNullityTrace(t *testing.T) {
	t.Parallel()

	m := lit(t, "1 2 3;2 4 6;1 0 1")
	rank, err := ops.Rank(m)
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	nullity, err := ops.Nullity(m)
	require.NoError(t, err)
	require.Equal(t, 1, nullity)

	tr, err := ops.Trace(m)
	require.NoError(t, err)
	require.Equal(t, 6.0, tr)

	_, err = ops.Trace(lit(t, "1 2"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = ops.Rank[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCovariance(t *testing.T) {
	t.Parallel()

	x := lit(t, "1 2;3 6;5 10")
	xc, means, err := ops.CenterColumns(x)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, means)
	requireClose(t, lit(t, "-2 -4;0 0;2 4"), xc)

	cov, _, err := ops.Covariance(x)
	require.NoError(t, err)
	requireClose(t, lit(t, "4 8;8 16"), cov)

	_, _, err = ops.Covariance(lit(t, "1 2"))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	cov, means, err = ops.Covariance(empty)
	require.NoError(t, err)
	require.True(t, cov.IsEmpty())
	require.Empty(t, means)
}
