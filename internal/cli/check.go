// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Report every malformed line in one or more matrix files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.store()
			var result *multierror.Error
			for _, path := range args {
				if err := store.Check(path); err != nil {
					a.log.Debug("check failed", "path", path, "error", err)
					result = multierror.Append(result, err)
					continue
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path); err != nil {
					return err
				}
			}

			return result.ErrorOrNil()
		},
	}
}
