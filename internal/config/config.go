// Package config loads runtime tuning for the game from an optional YAML
// file, falling back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the simulation and front-ends read.
type Config struct {
	// World dimensions, in grid cells, and the pixel size of one cell.
	GridColumns int     `yaml:"grid_columns"`
	GridRows    int     `yaml:"grid_rows"`
	BlockSize   float64 `yaml:"block_size"`

	// Simulation cadence and physics tuning.
	TickMillis int     `yaml:"tick_millis"`
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"` // velocity retained per second

	// Terrain generation.
	Seed int64 `yaml:"seed"` // 0 = time-seeded

	// SSH front-end (cmd/server only).
	SSHPort     int    `yaml:"ssh_port"`
	HostKeyFile string `yaml:"host_key_file"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		GridColumns: 32,
		GridRows:    16,
		BlockSize:   32,
		TickMillis:  15,
		Gravity:     300,
		Damping:     0.9,
		Seed:        0,
		SSHPort:     2222,
		HostKeyFile: "server_host_key",
	}
}

// Load reads the config file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
