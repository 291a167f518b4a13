// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and row-reduction tests.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// Tolerances shared by floating-point assertions.
const (
	rtolTiny = 1e-12
	atolTiny = 1e-12
)

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustLiteral PARSES a matrix literal such as "1 2;3 4" or fails the test.
func MustLiteral(t testing.TB, text string, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.Parse(text, opts...)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T any](t testing.TB, m *matrix.Grid[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet[T any](t testing.TB, m *matrix.Grid[T], i, j int, v T) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RandFilledDense RETURNS an r×c Dense filled with deterministic U(-1,1).
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// RandIntDense RETURNS an r×c Dense of small integers in [-span, span].
// Integer-valued inputs keep cofactor sums exact.
func RandIntDense(t testing.TB, r, c, span int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, float64(rng.Intn(2*span+1)-span))
		}
	}

	return m
}

// CompareExact ASSERTS strict equality between a matrix and a 2D literal.
func CompareExact[T comparable](t testing.TB, want [][]T, m *matrix.Grid[T]) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("CompareExact: Rows = %d; want %d", m.Rows(), len(want))
	}
	var i, j int
	var v T
	for i = 0; i < m.Rows(); i++ {
		if len(want[i]) != m.Cols() {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, m.Cols(), len(want[i]))
		}
		for j = 0; j < m.Cols(); j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t testing.TB, a, b *matrix.Dense, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\n%v\nvs\n%v", rtol, atol, a, b)
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}
