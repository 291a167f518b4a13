// SPDX-License-Identifier: MIT

package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// Inverse returns m⁻¹ by solving m·X = I with the row-reduction solver.
//
// Implementation:
//   - Stage 1: validate m is non-nil and square; build I of the same order.
//   - Stage 2: X = matrix.Solve(m, I).
//   - Stage 3: an inconsistent [m | I] means m is singular.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T matrix.Float](m *matrix.Grid[T]) (*matrix.Grid[T], error) {
	id, err := matrix.IdentityLike(m)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	inv, err := matrix.Solve(m, id)
	if errors.Is(err, matrix.ErrNoSolution) {
		return nil, fmt.Errorf("Inverse: %w", matrix.ErrSingular)
	}
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	return inv, nil
}
