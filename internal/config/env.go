package config

import (
	"os"
	"strconv"
)

// FromEnv overlays SNOWID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("SNOWID_DATACENTER_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Node.DatacenterID = n
		}
	}
	if v := os.Getenv("SNOWID_MACHINE_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Node.MachineID = n
		}
	}
	if v := os.Getenv("SNOWID_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SNOWID_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
