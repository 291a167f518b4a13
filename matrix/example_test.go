package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// ExampleSolve solves a 2×2 system with two right-hand sides.
func ExampleSolve() {
	a := matrix.MustParse("3 1;1 3")
	b := matrix.MustParse("7 5;5 7")

	x, err := matrix.Solve(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	x, _ = matrix.Round(x, 2)
	fmt.Print(x)
	// Output:
	// [2, 1]
	// [1, 2]
}

// ExampleDeterminant expands a 4×4 determinant by cofactors.
func ExampleDeterminant() {
	m := matrix.MustParse("4 3 2 1;9 8 7 6;12 21 12 43;97 1 32 1")
	d, _ := matrix.Determinant(m)
	fmt.Println(d)
	// Output:
	// -19820
}

// ExampleRREF reduces a rank-one matrix.
func ExampleRREF() {
	r, _ := matrix.RREF(matrix.MustParse("1 1;1 1"))
	fmt.Print(r)
	// Output:
	// [1, 1]
	// [0, 0]
}

// ExampleGrid_All enumerates column by column.
func ExampleGrid_All() {
	m := matrix.MustParse("1 2;3 4")
	for v := range m.All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// 1 3 2 4
}
