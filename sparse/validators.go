// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for operand checks (nil, shape, compatibility).
//   - Kernels delegate here and only add their operation tag.
//
// All validators are O(1) and allocate only on failure.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateShape rejects negative dimensions. 0×n and n×0 are valid.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape)
	}

	return nil
}

// ValidateNotNil returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *SparseMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal rows and cols.
// Errors: ErrNilMatrix, *DimensionMismatchError.
// Used by Add and Sub.
func ValidateSameShape(a, b *SparseMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return &DimensionMismatchError{Left: a.Shape(), Right: b.Shape(), Rule: "same shape"}
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Errors: ErrNilMatrix, *DimensionMismatchError.
func ValidateMulCompatible(a, b *SparseMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return &DimensionMismatchError{Left: a.Shape(), Right: b.Shape(), Rule: "left cols == right rows"}
	}

	return nil
}
