// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// Menu defaults.
const (
	DefaultMatrix1    = "sample_inputs/matrix1.txt"
	DefaultMatrix2    = "sample_inputs/matrix2.txt"
	DefaultResultsDir = "Results"
)

var errInvalidChoice = errors.New("invalid choice")

func newMenuCommand(a *app) *cobra.Command {
	var (
		matrix1    string
		matrix2    string
		resultsDir string
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Pick two matrices and an operation interactively",
		Long: `menu asks for the two operands (each one of --matrix1 or --matrix2) and an
operation, then writes the result to <results-dir>/<operation>_result.txt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := &menu{
				in:    bufio.NewScanner(cmd.InOrStdin()),
				out:   cmd.OutOrStdout(),
				files: [2]string{matrix1, matrix2},
			}

			return m.run(a, resultsDir)
		},
	}
	cmd.Flags().StringVar(&matrix1, "matrix1", DefaultMatrix1, "File offered as choice 1")
	cmd.Flags().StringVar(&matrix2, "matrix2", DefaultMatrix2, "File offered as choice 2")
	cmd.Flags().StringVar(&resultsDir, "results-dir", DefaultResultsDir, "Directory the result file is written to")

	return cmd
}

type menu struct {
	in    *bufio.Scanner
	out   io.Writer
	files [2]string
}

func (m *menu) run(a *app, resultsDir string) error {
	fmt.Fprintln(m.out, "Welcome to the Sparse Matrix Operations Program!")
	left, err := m.pickMatrix("first")
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out)
	right, err := m.pickMatrix("second")
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Select an operation:")
	for _, op := range sparse.Ops() {
		fmt.Fprintf(m.out, "%d. %s\n", int(op), op.Title())
	}
	choice, err := m.prompt("Enter your choice (1/2/3): ")
	if err != nil {
		return err
	}
	op, err := sparse.ParseOp(choice)
	if err != nil {
		return fmt.Errorf("menu: %w for the operation %q: enter 1, 2, or 3", errInvalidChoice, choice)
	}

	store := a.store()
	res, err := a.compute(store, op, left, right)
	if err != nil {
		return err
	}
	output := filepath.Join(resultsDir, op.ResultFile())
	if err = store.Save(output, res); err != nil {
		return err
	}
	_, err = fmt.Fprintf(m.out, "%s completed successfully. Output written to %s.\n", op.Title(), output)

	return err
}

// pickMatrix shows both file choices and returns the selected path.
func (m *menu) pickMatrix(which string) (string, error) {
	fmt.Fprintf(m.out, "Select the %s matrix:\n", which)
	for i, f := range m.files {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, filepath.Base(f))
	}
	choice, err := m.prompt("Enter your choice (1/2): ")
	if err != nil {
		return "", err
	}
	switch choice {
	case "1":
		return m.files[0], nil
	case "2":
		return m.files[1], nil
	}

	return "", fmt.Errorf("menu: %w for the %s matrix %q: enter 1 or 2", errInvalidChoice, which, choice)
}

func (m *menu) prompt(text string) (string, error) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("menu: read choice: %w", err)
		}
		return "", fmt.Errorf("menu: read choice: %w", io.ErrUnexpectedEOF)
	}

	return strings.TrimSpace(m.in.Text()), nil
}
