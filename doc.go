// SPDX-License-Identifier: MIT

// Package sparsecalc is a small toolkit for integer matrices that are mostly
// zero: only non-zero cells are stored, and addition, subtraction and
// multiplication run in time proportional to the stored entries.
//
// Layout:
//
//	sparse/          SparseMatrix, Builder, Add/Sub/Mul, Op dispatch, validators
//	sparsefmt/       the rows=/cols=/(r, c, v) text format: Parse, Decode, Validate, Format, Encode
//	matrixio/        afero-backed Load/Save/Check with hclog logging
//	internal/cli     the cobra command tree (add, subtract, multiply, check, menu)
//	cmd/sparsecalc   the binary
//
// Quick start:
//
//	a, _ := sparsefmt.Parse("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n")
//	b, _ := sparsefmt.Parse("rows=2\ncols=2\n(0, 0, 3)\n(0, 1, 4)\n")
//	p, _ := sparse.Mul(a, b)
//	fmt.Print(sparsefmt.Format(p))
package sparsecalc
