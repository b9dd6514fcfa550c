// SPDX-License-Identifier: MIT

// Package sparsefmt: functional configuration for the parser.
//
// Defaults reproduce the plain file contract: duplicate positions resolve to
// the last value, and dimensions are limited only by the int range.
// WithX constructors panic only on nonsensical arguments (programmer error).
package sparsefmt

// Defaults (single source of truth).
const (
	// DefaultRejectDuplicates keeps the last-value-wins policy.
	DefaultRejectDuplicates = false

	// DefaultMaxDimension disables the dimension limit.
	DefaultMaxDimension = 0
)

const panicMaxDimensionInvalid = "sparsefmt: WithMaxDimension: limit must be > 0"

// Option mutates parser options.
type Option func(*options)

type options struct {
	rejectDuplicates bool // DefaultRejectDuplicates
	maxDimension     int  // DefaultMaxDimension; 0 = unlimited
}

// WithRejectDuplicates turns a repeated (row, col) into a FormatError
// wrapping ErrDuplicateEntry instead of overwriting the earlier value.
func WithRejectDuplicates() Option {
	return func(o *options) { o.rejectDuplicates = true }
}

// WithMaxDimension rejects "rows=" or "cols=" values above limit with
// ErrDimensionTooLarge. Panics if limit <= 0.
func WithMaxDimension(limit int) Option {
	if limit <= 0 {
		panic(panicMaxDimensionInvalid)
	}

	return func(o *options) { o.maxDimension = limit }
}

// gatherOptions applies user options over the defaults. Nil options are skipped.
func gatherOptions(user ...Option) options {
	o := options{
		rejectDuplicates: DefaultRejectDuplicates,
		maxDimension:     DefaultMaxDimension,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
