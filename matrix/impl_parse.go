// SPDX-License-Identifier: MIT

// Package matrix - text ingestion of matrix literals.
//
// A literal is a list of rows joined by the row separator, each row a list of
// numbers joined by the column separator: "1 2 -3;-4 5 6" is 2×3.
// Values are laid out row-major through FromValues, so the parsed placement
// always matches the literal as written.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a matrix literal into a *Dense.
//
// Implementation:
//   - Stage 1: resolve options; blank input yields the empty 0×0 matrix.
//   - Stage 2: split rows, split each row into trimmed tokens, require the
//     same token count on every row.
//   - Stage 3: strconv.ParseFloat each token; enforce the NaN/Inf policy.
//   - Stage 4: FromValues(values, rowCount).
//
// Errors:
//   - ErrFormat for an empty row, inconsistent row lengths, or a malformed
//     token (the strconv error is wrapped as well).
//   - ErrNaNInf for non-finite tokens under the default policy.
//
// Complexity:
//   - Time O(len(text)), Space O(r*c).
func Parse(text string, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	text = strings.TrimSpace(text)
	if text == "" {
		return newGrid[float64](0, 0), nil
	}

	rows := strings.Split(text, string(o.rowSep))
	values := make([]float64, 0, len(rows))
	cols := -1
	var (
		tokens []string
		v      float64
		err    error
	)
	for i, row := range rows {
		tokens = splitTokens(row, o.colSep)
		if len(tokens) == 0 {
			return nil, fmt.Errorf("Parse: row %d is empty: %w", i, ErrFormat)
		}
		if cols < 0 {
			cols = len(tokens)
		} else if len(tokens) != cols {
			return nil, fmt.Errorf("Parse: row %d has %d values, want %d: %w", i, len(tokens), cols, ErrFormat)
		}
		for j, tok := range tokens {
			v, err = strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("Parse: (%d,%d): %w: %w", i, j, ErrFormat, err)
			}
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("Parse: (%d,%d) %q: %w", i, j, tok, ErrNaNInf)
			}
			values = append(values, v)
		}
	}

	return FromValues(values, len(rows))
}

// MustParse is Parse for literals known to be valid (tests, examples).
// It panics on error.
func MustParse(text string, opts ...Option) *Dense {
	m, err := Parse(text, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// splitTokens splits one row. Whitespace separators collapse runs; any other
// separator is literal and each token is trimmed.
func splitTokens(row string, sep rune) []string {
	if unicode.IsSpace(sep) {
		return strings.Fields(row)
	}
	if strings.TrimSpace(row) == "" {
		return nil
	}
	tokens := strings.Split(row, string(sep))
	for k := range tokens {
		tokens[k] = strings.TrimSpace(tokens[k])
	}

	return tokens
}
