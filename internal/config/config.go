package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rzbill/snowid/pkg/snowflake"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Node NodeConfig `json:"node" yaml:"node"`
	Log  LogConfig  `json:"log" yaml:"log"`
}

// NodeConfig identifies this node within the fleet. Both IDs occupy 5-bit
// fields in minted identifiers; assigning identities across the fleet is an
// operational concern outside this tool.
type NodeConfig struct {
	DatacenterID int64 `json:"datacenterId" yaml:"datacenterId"`
	MachineID    int64 `json:"machineId" yaml:"machineId"`
}

// LogConfig controls CLI logging.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Node: NodeConfig{DatacenterID: 0, MachineID: 0},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate range-checks the node identity so bad input is reported before a
// generator is constructed.
func (c Config) Validate() error {
	if c.Node.DatacenterID < 0 || c.Node.DatacenterID > snowflake.MaxDatacenterID {
		return fmt.Errorf("node.datacenterId %d not in [0, %d]", c.Node.DatacenterID, snowflake.MaxDatacenterID)
	}
	if c.Node.MachineID < 0 || c.Node.MachineID > snowflake.MaxMachineID {
		return fmt.Errorf("node.machineId %d not in [0, %d]", c.Node.MachineID, snowflake.MaxMachineID)
	}
	return nil
}
