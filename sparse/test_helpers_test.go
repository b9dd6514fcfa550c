// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures for the sparse tests.
//
// Purpose:
//   - Small, deterministic constructors that fail the test on error.
//   - rapid generators for property tests (bounded values, small shapes).

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// e is a terse Entry constructor for table literals.
func e(row, col int, v int64) sparse.Entry {
	return sparse.Entry{Row: row, Col: col, Value: v}
}

// MustNew builds a rows×cols matrix or fails the test.
func MustNew(t testing.TB, rows, cols int, entries ...sparse.Entry) *sparse.SparseMatrix {
	t.Helper()
	m, err := sparse.New(rows, cols, entries...)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt(t testing.TB, m *sparse.SparseMatrix, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireNoStoredZero asserts the sparsity invariant on m.
func requireNoStoredZero(t require.TestingT, m *sparse.SparseMatrix) {
	for _, en := range m.Entries() {
		require.NotZerof(t, en.Value, "stored zero at (%d,%d)", en.Row, en.Col)
	}
}

// genMatrix draws a rows×cols matrix with up to 24 writes of small values.
// Zeros are drawn on purpose to exercise deletion in the builder.
func genMatrix(rows, cols int) *rapid.Generator[*sparse.SparseMatrix] {
	return rapid.Custom(func(t *rapid.T) *sparse.SparseMatrix {
		b, err := sparse.NewBuilder(rows, cols)
		if err != nil {
			t.Fatalf("NewBuilder: %v", err)
		}
		if rows == 0 || cols == 0 {
			return b.Build()
		}
		n := rapid.IntRange(0, 24).Draw(t, "writes")
		for k := 0; k < n; k++ {
			i := rapid.IntRange(0, rows-1).Draw(t, "row")
			j := rapid.IntRange(0, cols-1).Draw(t, "col")
			v := rapid.Int64Range(-50, 50).Draw(t, "value")
			if err = b.Set(i, j, v); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}

		return b.Build()
	})
}

// randomSparse fills nnz random positions of a rows×cols matrix with values
// in [-9, 9] \ {0}, using a fixed seed for reproducible benchmarks.
func randomSparse(tb testing.TB, rows, cols, nnz int, seed int64) *sparse.SparseMatrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	b, err := sparse.NewBuilder(rows, cols)
	require.NoError(tb, err)
	for b.Len() < nnz {
		v := int64(rng.Intn(9) + 1)
		if rng.Intn(2) == 0 {
			v = -v
		}
		require.NoError(tb, b.Set(rng.Intn(rows), rng.Intn(cols), v))
	}

	return b.Build()
}
