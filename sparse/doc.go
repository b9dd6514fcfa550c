// Package sparse implements an immutable sparse integer matrix and its
// arithmetic.
//
// The package provides:
//
//   - SparseMatrix: rows×cols integer matrix storing only non-zero entries,
//     grouped by row (row → col → value). Memory is O(nnz).
//   - Builder, New, Zeros, Identity: the only ways to create a matrix.
//   - Add, Sub, Mul (and the Sum/Diff/Product aliases): pure kernels that
//     return a fresh matrix and never mutate operands.
//   - Op, ParseOp, Apply: operation selection for CLI and menu callers.
//
// Shape errors are *DimensionMismatchError values that match
// ErrDimensionMismatch via errors.Is. Dense rows×cols storage is never
// allocated, so shapes in the tens of thousands are cheap as long as nnz is.
//
// Matrices are immutable, so they can be shared across goroutines freely.
package sparse
