// SPDX-License-Identifier: MIT

package sparsefmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// Encode writes m in the text format: the two headers, then one
// "(row, col, value)" line per stored entry in row-major order.
// Output of Encode always parses back to an Equal matrix.
func Encode(w io.Writer, m *sparse.SparseMatrix) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("sparsefmt: Encode: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s=%d\n%s=%d\n", headerRows, m.Rows(), headerCols, m.Cols())
	m.Range(func(e sparse.Entry) bool {
		fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Value)
		return true
	})

	// bufio keeps the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sparsefmt: Encode: %w", err)
	}

	return nil
}

// Format returns the text form of m. A nil matrix formats as "".
func Format(m *sparse.SparseMatrix) string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	_ = Encode(&sb, m) // strings.Builder never fails

	return sb.String()
}
