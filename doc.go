// Package densemat is a dense numeric matrix toolkit: a generic row-major
// matrix store, exact cofactor determinants, reduced row echelon form and a
// Gauss-Jordan linear solver, plus a small command line front end.
//
// Layout:
//
//	matrix/      Grid[T] storage, Parse, arithmetic, Determinant, RREF, Solve
//	matrix/ops/  routines composed from matrix: LU, Inverse, Rank, Trace,
//	             DeterminantElimination, CenterColumns, Covariance
//	internal/cli cobra commands, viper configuration and zap logging
//	cmd/matcalc  the matcalc binary
//	examples/    runnable walkthroughs
//
// Quick start:
//
//	a := matrix.MustParse("2 1; 1 3")
//	b := matrix.MustParse("3; 5")
//	x, err := matrix.Solve(a, b) // x = [0.8; 1.4]
//
// All routines are deterministic and side-effect free on their inputs.
// Numeric zero tests are exact; use matrix.Round or matrix.AllClose when
// comparing floating-point results.
package densemat
