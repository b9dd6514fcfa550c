// Package sparsefmt reads and writes sparse matrices in the line-oriented
// triple format:
//
//	rows=<non-negative integer>
//	cols=<non-negative integer>
//	(<row>, <col>, <value>)
//	...
//
// Rules enforced by Parse/Decode:
//
//   - blank and whitespace-only lines are skipped anywhere;
//   - rows= comes first, cols= second, each exactly once, before any entry;
//   - an entry is exactly "(" int "," int "," int ")" with whitespace allowed
//     only around the tokens; nothing may follow the closing parenthesis;
//   - indices must lie in [0,rows) × [0,cols);
//   - a repeated position keeps the last value (WithRejectDuplicates makes it
//     an error); value 0 is never stored.
//
// Failures are *FormatError values carrying the line number and text.
// Validate reports every malformed entry line at once, aggregated with
// go-multierror. Encode/Format write the same format back in row-major order.
package sparsefmt
