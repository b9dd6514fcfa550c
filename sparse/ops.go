// SPDX-License-Identifier: MIT
// Package sparse provides the arithmetic kernels over SparseMatrix:
// element-wise addition and subtraction, and the row-grouped product.
//
// Every kernel validates first (no partial results), allocates one fresh
// result, never mutates its operands, and never touches a position that is
// implicitly zero in both operands.

package sparse

import (
	"fmt"
	"math"
)

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: copy a's entries into the result.
//   - Stage 3: for each stored b[i,j], out[i,j] = a[i,j] + sign*b[i,j];
//     put() drops the key when the combination is 0.
//
// Complexity: Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func addSub(a, b *SparseMatrix, sign int64, opTag string) (*SparseMatrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newMatrix(a.rows, a.cols)
	for i, r := range a.data {
		out := make(rowMap, len(r))
		for j, v := range r {
			out[j] = v
		}
		res.data[i] = out
	}
	res.nnz = a.nnz

	var (
		v  int64
		ok bool
	)
	for i, r := range b.data {
		for j, bv := range r {
			if sign > 0 {
				v, ok = addInt64(a.get(i, j), bv)
			} else {
				v, ok = subInt64(a.get(i, j), bv)
			}
			if !ok {
				return nil, matrixErrorf(opTag, fmt.Errorf("(%d,%d): %w", i, j, ErrOverflow))
			}
			res.put(i, j, v)
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B as a fresh matrix.
// Only the union of stored keys is visited; zero sums are not stored.
//
// Errors: ErrNilMatrix, *DimensionMismatchError (matches ErrDimensionMismatch),
// ErrOverflow.
// Complexity: O(nnz(A) + nnz(B)).
func Add(a, b *SparseMatrix) (*SparseMatrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B as a fresh matrix.
// Same contract and complexity as Add.
func Sub(a, b *SparseMatrix) (*SparseMatrix, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product C = A × B with shape A.Rows × B.Cols.
//
// Implementation (row-grouped):
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: for each stored row i of A, and each stored A[i,k], scan only
//     row k of B and accumulate A[i,k]*B[k,j] into acc[j].
//   - Stage 3: move the non-zero accumulators of row i into the result.
//
// Both operands already store entries grouped by row, so no index over B has
// to be built. Nothing proportional to rows·cols is ever allocated.
//
// Errors: ErrNilMatrix, *DimensionMismatchError, ErrOverflow when any partial
// product or running sum leaves the int64 range.
// Complexity: O(Σ_{(i,k) ∈ A} nnz(B row k)) time, O(nnz(C) + B.Cols) space.
func Mul(a, b *SparseMatrix) (*SparseMatrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := newMatrix(a.rows, b.cols)
	var (
		p, s int64
		ok   bool
	)
	for i, ar := range a.data {
		acc := make(rowMap)
		for k, av := range ar {
			br, found := b.data[k]
			if !found {
				continue // row k of B is all zeros
			}
			for j, bv := range br {
				if p, ok = mulInt64(av, bv); !ok {
					return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, ErrOverflow))
				}
				if s, ok = addInt64(acc[j], p); !ok {
					return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, ErrOverflow))
				}
				acc[j] = s
			}
		}
		for j, v := range acc {
			if v == 0 {
				delete(acc, j) // cancellation
			}
		}
		if len(acc) > 0 {
			res.data[i] = acc
			res.nnz += len(acc)
		}
	}

	return res, nil
}

// addInt64 returns a+b and false on overflow.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

// subInt64 returns a-b and false on overflow.
func subInt64(a, b int64) (int64, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}

	return d, true
}

// mulInt64 returns a*b and false on overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}
