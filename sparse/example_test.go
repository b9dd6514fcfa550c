package sparse_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// ExampleMul multiplies a diagonal matrix by a matrix with one dense row.
func ExampleMul() {
	a, _ := sparse.New(2, 2,
		sparse.Entry{Row: 0, Col: 0, Value: 1},
		sparse.Entry{Row: 1, Col: 1, Value: 2},
	)
	b, _ := sparse.New(2, 2,
		sparse.Entry{Row: 0, Col: 0, Value: 3},
		sparse.Entry{Row: 0, Col: 1, Value: 4},
	)

	sum, _ := sparse.Add(a, b)
	prod, _ := sparse.Mul(a, b)
	fmt.Println("sum:", sum.Entries())
	fmt.Println("product:", prod.Entries())

	// Output:
	// sum: [{0 0 4} {0 1 4} {1 1 2}]
	// product: [{0 0 3} {0 1 4}]
}

// ExampleBuilder shows last-write-wins and deletion by writing zero.
func ExampleBuilder() {
	b, _ := sparse.NewBuilder(3, 3)
	_ = b.Set(0, 0, 5)
	_ = b.Set(0, 0, 6) // overwrites
	_ = b.Set(2, 1, 7)
	_ = b.Set(2, 1, 0) // deletes
	m := b.Build()

	fmt.Println(m, m.Entries())

	// Output:
	// SparseMatrix(3x3, nnz=1) [{0 0 6}]
}

// ExampleAdd_dimensionMismatch shows how callers distinguish shape errors.
func ExampleAdd_dimensionMismatch() {
	a, _ := sparse.Zeros(2, 2)
	b, _ := sparse.Zeros(3, 2)

	_, err := sparse.Add(a, b)
	var dm *sparse.DimensionMismatchError
	if errors.As(err, &dm) {
		fmt.Println(dm.Left, dm.Right, errors.Is(err, sparse.ErrDimensionMismatch))
	}

	// Output:
	// 2x2 3x2 true
}
