// Package config loads optional defaults for dirsize from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultCount is the number of largest files reported when none is given.
const DefaultCount = 20

// Config holds defaults that command-line flags and arguments override.
type Config struct {
	// Count is the number of largest files to report.
	Count int `yaml:"count"`
	// Output is the output format (table or json).
	Output string `yaml:"output"`
	// KeepGoing skips unreadable entries instead of aborting.
	KeepGoing bool `yaml:"keep_going"`
	// Debug enables debug output.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Count:  DefaultCount,
		Output: "table",
	}
}

// DefaultPath returns the per-user config file location, or "" if it cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "dirsize", "config.yaml")
}

// Load reads the config file at path. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if cfg.Count < 0 {
		return nil, fmt.Errorf("invalid count %d in %s: must not be negative", cfg.Count, path)
	}

	return cfg, nil
}
