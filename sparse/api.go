// SPDX-License-Identifier: MIT
// Package sparse: public API facades.
//
// Thin, intention-revealing aliases over the canonical kernels. Facades never
// change validation or complexity; they only forward.

package sparse

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(nnz(a) + nnz(b)).
func Sum(a, b *SparseMatrix) (*SparseMatrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
// Complexity: O(nnz(a) + nnz(b)).
func Diff(a, b *SparseMatrix) (*SparseMatrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *SparseMatrix) (*SparseMatrix, error) { return Mul(a, b) }

// ZerosLike returns an empty matrix with the same shape as m.
func ZerosLike(m *SparseMatrix) (*SparseMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newMatrix(m.rows, m.cols), nil
}

// IdentityLike returns the identity that leaves m unchanged when multiplied
// on the given side: left=true gives I(m.Rows) for I·m, left=false gives
// I(m.Cols) for m·I.
func IdentityLike(m *SparseMatrix, left bool) (*SparseMatrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if left {
		return Identity(m.rows)
	}

	return Identity(m.cols)
}
