// SPDX-License-Identifier: MIT

// Command matcalc evaluates dense matrix operations from the command line:
//
//	matcalc det "4 3 2 1;9 8 7 6;12 21 12 43;97 1 32 1"
//	matcalc solve "3 1;1 3" "7 5;5 7" --decimals 2
//	matcalc -o yaml rref "1 1;1 1"
//
// Operands that begin with '-' follow the "--" terminator:
//
//	matcalc scale -- "1 2;3 4" -2
//	matcalc det -- "-1 2;3 4"
package main

import (
	"os"

	"github.com/katalvlaran/densemat/internal/cli"
)

func main() {
	// On failure cobra prints the error, so we only need a non-zero status.
	if cli.NewRootCommand().Execute() != nil {
		os.Exit(1)
	}
}
