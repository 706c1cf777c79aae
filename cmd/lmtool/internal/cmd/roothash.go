package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootHashCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "root FILE FILE...",
		Short: "Print the Merkle root of the given files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildTree(e, args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tree.Root())
			return err
		},
	}
}
