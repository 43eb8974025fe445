package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rzbill/snowid/pkg/snowflake"
	"github.com/spf13/cobra"
)

// newDecodeCommand constructs the `decode` subcommand.
func newDecodeCommand() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode <id>...",
		Short: "Decode identifiers into their fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				d := snowflake.Decode(id)
				if asJSON {
					if err := enc.Encode(d); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(out, "id=%d timestampMs=%d datacenterId=%d machineId=%d sequence=%d\n",
					id, d.TimestampMs, d.DatacenterID, d.MachineID, d.Sequence)
			}
			return nil
		},
	}
	decodeCmd.Flags().Bool("json", false, "Emit JSON, one object per id")
	return decodeCmd
}

// newFormatCommand constructs the `format` subcommand.
func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format <id>...",
		Short: "Render identifiers in human-readable form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, snowflake.Format(id))
			}
			return nil
		},
	}
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}
