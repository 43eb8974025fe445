// Package config provides loading and environment overlay for Snowid CLI
// configuration. It exposes a Default() baseline, file loading (JSON or
// YAML), and an env overlay. Precedence is defaults < file < env < flags;
// flags are applied by the CLI layer.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/snowid.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil { ... }
//	g, err := snowflake.New(cfg.Node.DatacenterID, cfg.Node.MachineID)
package config
