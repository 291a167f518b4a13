// SPDX-License-Identifier: MIT

// Package ops provides derived linear-algebra routines built only on the
// public surface of package matrix: inversion via the row-reduction solver,
// Doolittle LU, an O(n³) elimination determinant, rank/nullity and trace.
//
// Every routine treats its inputs as read-only and returns fresh grids.
package ops
