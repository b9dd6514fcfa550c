// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set and typed shape errors.
// Kernels return these sentinels (optionally op-tagged via matrixErrorf) and
// tests check them via errors.Is / errors.As. No function panics on
// user-triggered conditions.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." so messages grep cleanly in
// logs. Kernels wrap with the operation tag ("Add: sparse: ...") at the
// boundary; callers still match with errors.Is.

var (
	// ErrBadShape is returned when requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// with different shapes, or Mul where a.Cols != b.Rows.
	// A *DimensionMismatchError matches it via errors.Is.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *SparseMatrix was passed as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrOverflow signals that an intermediate or final value left the int64 range.
	ErrOverflow = errors.New("sparse: integer overflow")

	// ErrUnknownOp is returned by ParseOp and Apply for an unrecognized operation.
	ErrUnknownOp = errors.New("sparse: unknown operation")
)

// Shape is a (rows, cols) pair.
type Shape struct {
	Rows, Cols int
}

// String renders the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// DimensionMismatchError describes two operand shapes that violate Rule.
// It is raised before any computation starts, so no partial result exists.
type DimensionMismatchError struct {
	Left, Right Shape
	Rule        string // e.g. "same shape", "left cols == right rows"
}

// Error implements error.
func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("sparse: dimension mismatch: %s vs %s (%s)", e.Left, e.Right, e.Rule)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
