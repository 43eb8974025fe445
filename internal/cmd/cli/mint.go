package cli

import (
	"fmt"

	"github.com/rzbill/snowid/pkg/log"
	"github.com/rzbill/snowid/pkg/snowflake"
	"github.com/spf13/cobra"
)

// newMintCommand constructs the `mint` subcommand.
func newMintCommand(logger log.Logger) *cobra.Command {
	mintCmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint one or more identifiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}

			g, err := newGenerator(cmd)
			if err != nil {
				return err
			}
			ids, err := g.NextN(count)
			if err != nil {
				logger.Error("mint failed", log.Err(err))
				return err
			}
			logger.Debug("minted identifiers", log.Int("count", len(ids)))

			out := cmd.OutOrStdout()
			for _, id := range ids {
				if verbose {
					fmt.Fprintf(out, "%d\t%s\n", id, snowflake.Format(id))
				} else {
					fmt.Fprintln(out, id)
				}
			}
			return nil
		},
	}
	mintCmd.Flags().IntP("count", "n", 1, "Number of identifiers to mint")
	mintCmd.Flags().BoolP("verbose", "v", false, "Also print the decoded breakdown")
	return mintCmd
}
