// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the matrix, the builder and the
// kernels. Storage types stay unexported; callers see Entry and Shape only.
package sparse

// Entry is one stored (non-zero) element of a SparseMatrix.
type Entry struct {
	Row   int   // 0-based row index
	Col   int   // 0-based column index
	Value int64 // never 0 when produced by this package
}

// rowMap holds the non-zero values of one row, keyed by column.
type rowMap map[int]int64

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)
