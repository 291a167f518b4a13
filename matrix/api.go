// SPDX-License-Identifier: MIT
// Package matrix: public API facades and factory helpers.
//
// Purpose:
//   - Provide thin, intention-revealing constructors over NewGrid + Set.
//   - Provide discoverability aliases that delegate to the canonical kernels.
//   - Each facade delegates to the canonical implementation.

package matrix

import "math/rand"

// ---------- Constructors (float64) ----------

// NewDense returns a rows×cols zero *Dense. Negative sizes yield ErrInvalidDimensions.
func NewDense(rows, cols int) (*Dense, error) { return NewGrid[float64](rows, cols) }

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewOnes returns a rows×cols *Dense filled with 1.
func NewOnes(rows, cols int) (*Dense, error) { return NewFilled(rows, cols, 1.0) }

// NewFilled returns a rows×cols grid with every element set to v.
func NewFilled[T any](rows, cols int, v T) (*Grid[T], error) {
	g, err := NewGrid[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range g.data {
		g.data[k] = v
	}

	return g, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
func NewIdentity(n int) (*Dense, error) { return Identity[float64](n) }

// Identity returns I_n for any numeric element type.
func Identity[T Number](n int) (*Grid[T], error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return identity[T](n), nil
}

// NewRandom returns a rows×cols *Dense with values uniform in [0, 1), drawn
// from a source seeded with seed. Equal seeds give equal matrices.
func NewRandom(rows, cols int, seed int64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	for k := range m.data {
		m.data[k] = rng.Float64()
	}

	return m, nil
}

// ZerosLike returns a new zero grid with the same shape as g.
func ZerosLike[T any](g *Grid[T]) (*Grid[T], error) {
	if err := ValidateNotNil(g); err != nil {
		return nil, err
	}

	return newGrid[T](g.r, g.c), nil
}

// IdentityLike returns I with dimension = Rows(g); requires square shape.
func IdentityLike[T Number](g *Grid[T]) (*Grid[T], error) {
	if err := ValidateSquareNonNil(g); err != nil {
		return nil, err
	}

	return identity[T](g.r), nil
}

// ---------- Aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b *Grid[T]) (*Grid[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number](a, b *Grid[T]) (*Grid[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b *Grid[T]) (*Grid[T], error) { return Mul(a, b) }

// Det is an alias for Determinant.
func Det[T Number](m *Grid[T]) (T, error) { return Determinant(m) }
