// SPDX-License-Identifier: MIT

// Command sparsecalc adds, subtracts and multiplies sparse integer matrices
// stored in the rows=/cols=/(r, c, v) text format.
package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/katalvlaran/sparsecalc/internal/cli"
)

func main() {
	root := cli.NewRootCommand(afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
