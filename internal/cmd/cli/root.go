// Package cli contains Cobra CLI commands for Snowid.
package cli

import (
	"github.com/rzbill/snowid/internal/config"
	"github.com/rzbill/snowid/pkg/log"
	"github.com/rzbill/snowid/pkg/snowflake"
	"github.com/spf13/cobra"
)

// NewRoot constructs the root command and registers subcommands.
func NewRoot(logger log.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "snowid",
		Short:        "Snowid CLI",
		Long:         "Snowid mints unique, time-ordered 64-bit identifiers. This CLI mints, decodes and formats them.",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "Config file (JSON or YAML)")
	root.PersistentFlags().Int64("datacenter-id", 0, "Datacenter ID [0,31] (overrides config)")
	root.PersistentFlags().Int64("machine-id", 0, "Machine ID [0,31] (overrides config)")

	root.AddCommand(
		newMintCommand(logger),
		newDecodeCommand(),
		newFormatCommand(),
		newInfoCommand(),
	)
	return root
}

// resolveConfig applies the defaults < file < env < flags precedence.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.FromEnv(&cfg)
	if cmd.Flags().Changed("datacenter-id") {
		cfg.Node.DatacenterID, _ = cmd.Flags().GetInt64("datacenter-id")
	}
	if cmd.Flags().Changed("machine-id") {
		cfg.Node.MachineID, _ = cmd.Flags().GetInt64("machine-id")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newGenerator builds a generator from the resolved configuration.
func newGenerator(cmd *cobra.Command) (*snowflake.Generator, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return snowflake.New(cfg.Node.DatacenterID, cfg.Node.MachineID)
}
