// Package matrix is a dense matrix library: storage, parsing, arithmetic and
// the classic linear-algebra routines built on row reduction.
//
// What & Why:
//
//	Grid[T] is a rectangular, row-major buffer of any element type. Shape
//	changes (SubMatrix, Slice, Clone, Transpose, JoinRows, JoinColumns) always
//	copy, so no two grids share storage. Capability grows with the element
//	constraint:
//
//	    any         storage, indexing, joins, column-major All()
//	    comparable  Equal, ElementEqual
//	    cmp.Ordered GreaterThan, LessThan, ...
//	    Number      Add, Sub, Mul, Scale, Pow, Determinant
//	    Float       RREF, Solve, Round
//
//	Dense is Grid[float64]; Parse, the factories and the CLI speak Dense.
//
// Numeric policy:
//
//	Zero tests in RREF/Solve and equality in Equal are exact. Solver output
//	usually needs Round before comparing with Equal.
//
// Complexity:
//
//	At/Set O(1). Mul O(r·n·c). RREF/Solve O(r·c·min(r,c)).
//	Determinant is cofactor expansion, O(n!); see ops.DeterminantElimination
//	for an O(n³) alternative.
package matrix
