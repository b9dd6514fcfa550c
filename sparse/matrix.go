// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"
)

// SparseMatrix is an immutable rows×cols integer matrix that stores only its
// non-zero entries, grouped by row: data[row][col] = value.
//
// Invariants:
//   - every stored key satisfies 0 ≤ row < rows and 0 ≤ col < cols;
//   - no stored value is 0 and no row map is empty;
//   - rows, cols and data never change once the matrix is returned to a caller.
//
// Memory is O(nnz); a dense rows×cols array is never allocated.
type SparseMatrix struct {
	rows, cols int
	data       map[int]rowMap
	nnz        int
}

// newMatrix allocates an empty matrix. Shape must already be validated.
func newMatrix(rows, cols int) *SparseMatrix {
	return &SparseMatrix{rows: rows, cols: cols, data: make(map[int]rowMap)}
}

// put stores v at (row, col), deleting the key when v == 0.
// Bounds are the caller's responsibility. Complexity: O(1) amortized.
func (m *SparseMatrix) put(row, col int, v int64) {
	r, ok := m.data[row]
	if v == 0 {
		if !ok {
			return
		}
		if _, had := r[col]; had {
			delete(r, col)
			m.nnz--
			if len(r) == 0 {
				delete(m.data, row) // keep "no empty row map" invariant
			}
		}
		return
	}
	if !ok {
		r = make(rowMap)
		m.data[row] = r
	}
	if _, had := r[col]; !had {
		m.nnz++
	}
	r[col] = v
}

// get returns the stored value or 0. No bounds check.
func (m *SparseMatrix) get(row, col int) int64 {
	return m.data[row][col] // nil row map reads as 0
}

// Rows returns the number of rows. Complexity: O(1).
func (m *SparseMatrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *SparseMatrix) Cols() int { return m.cols }

// Shape returns (rows, cols) as a Shape.
func (m *SparseMatrix) Shape() Shape { return Shape{Rows: m.rows, Cols: m.cols} }

// NNZ returns the number of stored non-zero entries. Complexity: O(1).
func (m *SparseMatrix) NNZ() int { return m.nnz }

// At returns the value at (row, col), 0 when nothing is stored there.
// Returns ErrOutOfRange for indices outside the shape.
// Complexity: O(1).
func (m *SparseMatrix) At(row, col int) (int64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("SparseMatrix.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.get(row, col), nil
}

// Range calls fn for every stored entry in row-major order (row asc, then
// col asc) and stops early when fn returns false.
// Complexity: O(nnz · log nnz) for the ordering.
func (m *SparseMatrix) Range(fn func(Entry) bool) {
	rows := make([]int, 0, len(m.data))
	for i := range m.data {
		rows = append(rows, i)
	}
	slices.Sort(rows)

	var cols []int
	for _, i := range rows {
		r := m.data[i]
		cols = cols[:0]
		for j := range r {
			cols = append(cols, j)
		}
		slices.Sort(cols)
		for _, j := range cols {
			if !fn(Entry{Row: i, Col: j, Value: r[j]}) {
				return
			}
		}
	}
}

// Entries returns a fresh slice of all stored entries in row-major order.
// Mutating the slice never affects the matrix.
func (m *SparseMatrix) Entries() []Entry {
	out := make([]Entry, 0, m.nnz)
	m.Range(func(e Entry) bool {
		out = append(out, e)
		return true
	})

	return out
}

// Equal reports whether m and o have the same shape and the same stored
// entries. Two nil matrices are equal. Complexity: O(nnz).
func (m *SparseMatrix) Equal(o *SparseMatrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || m.nnz != o.nnz {
		return false
	}
	for i, r := range m.data {
		or, ok := o.data[i]
		if !ok || len(or) != len(r) {
			return false
		}
		for j, v := range r {
			if ov, ok := or[j]; !ok || ov != v {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer with a short summary; it never prints the
// entries themselves, which may number in the millions.
func (m *SparseMatrix) String() string {
	if m == nil {
		return "SparseMatrix(nil)"
	}

	return fmt.Sprintf("SparseMatrix(%dx%d, nnz=%d)", m.rows, m.cols, m.nnz)
}
