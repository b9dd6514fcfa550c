// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Builder accumulates entries for a single SparseMatrix.
// It is the only mutable surface of the package: Set may be called any number
// of times, the last write to a position wins, and writing 0 removes the
// position. Build hands the storage to an immutable SparseMatrix.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	m *SparseMatrix
}

// NewBuilder returns a Builder for a rows×cols matrix.
// Zero-sized shapes are valid; negative ones return ErrBadShape.
// Complexity: O(1); nothing proportional to rows·cols is allocated.
func NewBuilder(rows, cols int) (*Builder, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewBuilder: %w", err)
	}

	return &Builder{m: newMatrix(rows, cols)}, nil
}

// Set writes v at (row, col). v == 0 deletes any stored value.
// Returns ErrOutOfRange when the position is outside the shape.
func (b *Builder) Set(row, col int, v int64) error {
	if row < 0 || row >= b.m.rows || col < 0 || col >= b.m.cols {
		return fmt.Errorf("Builder.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	b.m.put(row, col, v)

	return nil
}

// Len returns the number of non-zero entries currently held.
func (b *Builder) Len() int { return b.m.nnz }

// Build returns the accumulated matrix and resets the builder to an empty
// matrix of the same shape, so later Set calls never reach the returned value.
func (b *Builder) Build() *SparseMatrix {
	out := b.m
	b.m = newMatrix(out.rows, out.cols)

	return out
}

// New builds a rows×cols matrix from entries (last write wins, zeros dropped).
func New(rows, cols int, entries ...Entry) (*SparseMatrix, error) {
	b, err := NewBuilder(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = b.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}

	return b.Build(), nil
}

// Zeros returns an empty rows×cols matrix (nnz == 0).
// It is the additive identity for matrices of that shape.
func Zeros(rows, cols int) (*SparseMatrix, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("Zeros: %w", err)
	}

	return newMatrix(rows, cols), nil
}

// Identity returns the n×n identity: entries (i, i, 1) for 0 ≤ i < n.
// Complexity: O(n).
func Identity(n int) (*SparseMatrix, error) {
	if err := validateShape(n, n); err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	m := newMatrix(n, n)
	for i := 0; i < n; i++ {
		m.put(i, i, 1)
	}

	return m, nil
}
