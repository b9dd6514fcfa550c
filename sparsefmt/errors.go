// SPDX-License-Identifier: MIT
// Package sparsefmt: format error taxonomy.
// Every parse failure is a *FormatError that matches ErrFormat via errors.Is
// and additionally unwraps to exactly one cause sentinel below.

package sparsefmt

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("sparsefmt: invalid format")

	// ErrMissingHeader: input ended before both "rows=" and "cols=" were seen.
	ErrMissingHeader = errors.New("sparsefmt: missing header")

	// ErrMalformedHeader: header line out of order, repeated, or not "name=<int>".
	ErrMalformedHeader = errors.New("sparsefmt: malformed header")

	// ErrNegativeDimension: "rows=" or "cols=" holds a negative integer.
	ErrNegativeDimension = errors.New("sparsefmt: negative dimension")

	// ErrDimensionTooLarge: a dimension exceeds the WithMaxDimension limit.
	ErrDimensionTooLarge = errors.New("sparsefmt: dimension too large")

	// ErrMalformedEntry: entry line is not exactly "(<int>, <int>, <int>)".
	ErrMalformedEntry = errors.New("sparsefmt: malformed entry")

	// ErrIndexOutOfRange: entry row/col is outside [0,rows) / [0,cols).
	ErrIndexOutOfRange = errors.New("sparsefmt: index out of range")

	// ErrDuplicateEntry: repeated (row, col) under WithRejectDuplicates.
	ErrDuplicateEntry = errors.New("sparsefmt: duplicate entry")
)

// FormatError reports a malformed input line.
// Line is 1-based; 0 means the problem was detected at end of input.
type FormatError struct {
	Line int    // 1-based line number, 0 at end of input
	Text string // offending line, trimmed
	Err  error  // cause; wraps one of the sentinels above
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("sparsefmt: at end of input: %v", e.Err)
	}

	return fmt.Sprintf("sparsefmt: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the cause.
func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// formatErrorf builds a *FormatError whose cause wraps sentinel with detail.
func formatErrorf(line int, text string, sentinel error, format string, args ...any) *FormatError {
	cause := sentinel
	if format != "" {
		cause = fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
	}

	return &FormatError{Line: line, Text: text, Err: cause}
}
