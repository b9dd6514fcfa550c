// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/sparsecalc/sparse"
	"github.com/katalvlaran/sparsecalc/sparsefmt"
)

type outputFormat string

const (
	formatText  outputFormat = "text"
	formatTable outputFormat = "table"
)

var errUnknownFormat = errors.New("unknown output format")

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatText, formatTable:
		return f, nil
	}

	return "", fmt.Errorf("--format %q: %w (want text or table)", s, errUnknownFormat)
}

// render writes m to w. Text output is the file format; table output is a
// summary line followed by one row per stored entry.
func render(w io.Writer, m *sparse.SparseMatrix, f outputFormat) error {
	if f == formatText {
		return sparsefmt.Encode(w, m)
	}

	if _, err := fmt.Fprintln(w, m); err != nil {
		return err
	}
	rows := make([][]string, 0, m.NNZ())
	m.Range(func(e sparse.Entry) bool {
		rows = append(rows, []string{
			strconv.Itoa(e.Row),
			strconv.Itoa(e.Col),
			strconv.FormatInt(e.Value, 10),
		})
		return true
	})

	table := tablewriter.NewWriter(w)
	table.Header("row", "col", "value")
	if err := table.Bulk(rows); err != nil {
		return err
	}

	return table.Render()
}
