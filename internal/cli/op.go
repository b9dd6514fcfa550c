// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/matrixio"
	"github.com/katalvlaran/sparsecalc/sparse"
)

var opAliases = map[sparse.Op][]string{
	sparse.OpAdd: {"sum", "addition"},
	sparse.OpSub: {"sub", "diff", "subtraction"},
	sparse.OpMul: {"mul", "product", "multiplication"},
}

func newOpCommand(a *app, op sparse.Op) *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:     op.String() + " LEFT RIGHT",
		Aliases: opAliases[op],
		Short:   fmt.Sprintf("%s of two sparse matrix files", op.Title()),
		Long: fmt.Sprintf(`%s of the matrices stored in LEFT and RIGHT.

Without --output the result is printed; --format selects plain text (the file
format) or a table. With --output the result is written to that file in the
file format and a confirmation is printed.`, op.Title()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			store := a.store()
			res, err := a.compute(store, op, args[0], args[1])
			if err != nil {
				return err
			}
			if output == "" {
				return render(cmd.OutOrStdout(), res, f)
			}
			if err = store.Save(output, res); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s completed successfully. Output written to %s.\n", op.Title(), output)

			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the result to this file instead of stdout")
	cmd.Flags().StringVar(&format, "format", string(formatText), "Stdout format: text or table")

	return cmd
}

// compute loads both operands from store and applies op to them.
func (a *app) compute(store *matrixio.Store, op sparse.Op, left, right string) (*sparse.SparseMatrix, error) {
	lhs, err := store.Load(left)
	if err != nil {
		return nil, err
	}
	rhs, err := store.Load(right)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := sparse.Apply(op, lhs, rhs)
	if err != nil {
		a.log.Error("operation failed", "op", op, "left", left, "right", right, "error", err)
		return nil, fmt.Errorf("%s %s %s: %w", op, left, right, err)
	}
	a.log.Info("operation complete", "op", op, "rows", res.Rows(), "cols", res.Cols(),
		"nnz", res.NNZ(), "elapsed", time.Since(start))

	return res, nil
}
