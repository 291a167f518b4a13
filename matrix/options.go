// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text ingestion (Parse) and
// the numeric policy applied to parsed values. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces cross-field invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRowSeparator splits a literal into rows: "1 2;3 4".
	DefaultRowSeparator = ';'

	// DefaultColumnSeparator splits a row into values. Whitespace separators
	// collapse runs, so "1   2" is two values.
	DefaultColumnSeparator = ' '

	// DefaultValidateNaNInf rejects NaN/±Inf tokens during Parse.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSeparatorInvalid = "matrix: separator must be a valid rune outside numeric token syntax"
	panicSeparatorClash   = "matrix: row and column separators must differ"
)

// numericRunes may appear inside a float token and so cannot separate tokens.
const numericRunes = "0123456789.+-eEinfINFaAnN_xXpP"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rowSep         rune // DefaultRowSeparator
	colSep         rune // DefaultColumnSeparator
	validateNaNInf bool // DefaultValidateNaNInf
}

// RowSeparator returns the effective row separator.
func (o Options) RowSeparator() rune { return o.rowSep }

// ColumnSeparator returns the effective column separator.
func (o Options) ColumnSeparator() rune { return o.colSep }

// ValidateNaNInf reports whether non-finite values are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithRowSeparator sets the rune that separates rows.
// Panics when sep is not a valid rune or could be part of a number.
func WithRowSeparator(sep rune) Option {
	mustSeparator(sep)

	return func(o *Options) { o.rowSep = sep }
}

// WithColumnSeparator sets the rune that separates values within a row.
// Panics when sep is not a valid rune or could be part of a number.
func WithColumnSeparator(sep rune) Option {
	mustSeparator(sep)

	return func(o *Options) { o.colSep = sep }
}

// WithValidateNaNInf makes Parse reject NaN and ±Inf tokens (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Parse accept NaN and ±Inf tokens as written.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts over the defaults. It panics when the row and
// column separators end up equal.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateSeparators reports whether row and col can split a matrix literal.
// It returns ErrInvalidSeparator when either rune is invalid or could appear
// inside a numeric token, or when the two are equal. The WithX constructors
// panic in exactly these cases, so callers holding untrusted input check here
// first.
func ValidateSeparators(row, col rune) error {
	if !validSeparator(row) {
		return fmt.Errorf("row separator %q: %w", row, ErrInvalidSeparator)
	}
	if !validSeparator(col) {
		return fmt.Errorf("column separator %q: %w", col, ErrInvalidSeparator)
	}
	if row == col {
		return fmt.Errorf("row and column separators are both %q: %w", row, ErrInvalidSeparator)
	}

	return nil
}

// gatherOptions applies opts in order over defaultOptions and checks invariants.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rowSep == o.colSep {
		panic(panicSeparatorClash)
	}

	return o
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		rowSep:         DefaultRowSeparator,
		colSep:         DefaultColumnSeparator,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// mustSeparator panics on runes that cannot serve as a separator.
func mustSeparator(sep rune) {
	if !validSeparator(sep) {
		panic(panicSeparatorInvalid)
	}
}

func validSeparator(sep rune) bool {
	return utf8.ValidRune(sep) && !strings.ContainsRune(numericRunes, sep)
}
