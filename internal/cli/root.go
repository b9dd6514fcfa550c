// SPDX-License-Identifier: MIT

// Package cli wires the sparse packages into the sparsecalc command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sparsecalc/internal/logging"
	"github.com/katalvlaran/sparsecalc/matrixio"
	"github.com/katalvlaran/sparsecalc/sparse"
	"github.com/katalvlaran/sparsecalc/sparsefmt"
)

// app holds the state shared by every subcommand.
type app struct {
	fs afero.Fs

	logLevel         string
	logJSON          bool
	rejectDuplicates bool
	maxDimension     int

	log hclog.Logger
}

// NewRootCommand builds the sparsecalc command tree. All file access goes
// through fs; in, out and errOut replace the process streams.
func NewRootCommand(fs afero.Fs, in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{fs: fs, log: hclog.NewNullLogger()}

	root := &cobra.Command{
		Use:   "sparsecalc",
		Short: "Add, subtract and multiply sparse integer matrices",
		Long: `sparsecalc reads sparse matrices stored as

  rows=<R>
  cols=<C>
  (<row>, <col>, <value>)
  ...

and writes the result of an addition, subtraction or multiplication in the
same format.

Example:
  sparsecalc multiply a.txt b.txt -o Results/multiply_result.txt`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.maxDimension < 0 {
				return fmt.Errorf("--max-dimension must be >= 0, got %d", a.maxDimension)
			}
			log, err := logging.New(logging.Options{
				Name:   "sparsecalc",
				Level:  a.logLevel,
				JSON:   a.logJSON,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log = log

			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", logging.DefaultLevel, "Log level: trace, debug, info, warn, error, off")
	flags.BoolVar(&a.logJSON, "log-json", false, "Write logs as JSON lines")
	flags.BoolVar(&a.rejectDuplicates, "reject-duplicates", false, "Treat a repeated (row, col) entry as a format error")
	flags.IntVar(&a.maxDimension, "max-dimension", 0, "Reject headers larger than this (0 = no limit)")

	for _, op := range sparse.Ops() {
		root.AddCommand(newOpCommand(a, op))
	}
	root.AddCommand(newCheckCommand(a), newMenuCommand(a))

	return root
}

// store returns a matrixio.Store configured from the persistent flags.
func (a *app) store() *matrixio.Store {
	var opts []sparsefmt.Option
	if a.rejectDuplicates {
		opts = append(opts, sparsefmt.WithRejectDuplicates())
	}
	if a.maxDimension > 0 {
		opts = append(opts, sparsefmt.WithMaxDimension(a.maxDimension))
	}

	return matrixio.NewStore(a.fs, a.log.Named("matrixio"), opts...)
}
