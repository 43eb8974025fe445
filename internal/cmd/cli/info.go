package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInfoCommand constructs the `info` subcommand.
func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show generator settings for this node identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.String())
			return nil
		},
	}
}
