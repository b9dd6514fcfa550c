// Package sparse_test provides benchmarks for the sparse kernels on large,
// very sparse shapes with a deterministic random fill.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// benchShape is large enough that any dense allocation would dominate.
const benchShape = 20000

// benchNNZ are the stored-entry counts to benchmark.
var benchNNZ = []int{1000, 10000, 50000}

// sink defeats dead-code elimination.
var sinkM *sparse.SparseMatrix

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, nnz := range benchNNZ {
		b.Run(fmt.Sprintf("nnz=%d", nnz), func(b *testing.B) {
			x := randomSparse(b, benchShape, benchShape, nnz, 1337)
			y := randomSparse(b, benchShape, benchShape, nnz, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, nnz := range benchNNZ {
		b.Run(fmt.Sprintf("nnz=%d", nnz), func(b *testing.B) {
			x := randomSparse(b, benchShape, benchShape, nnz, 11)
			y := randomSparse(b, benchShape, benchShape, nnz, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Sub(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, nnz := range benchNNZ {
		b.Run(fmt.Sprintf("nnz=%d", nnz), func(b *testing.B) {
			x := randomSparse(b, benchShape, benchShape, nnz, 7)
			y := randomSparse(b, benchShape, benchShape, nnz, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := sparse.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
