// Package config loads the genfs.yaml project configuration.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// SourceConfig describes where generation text comes from by default.
type SourceConfig struct {
	URL    string `yaml:"url"`    // backend endpoint; empty means file/stdin input
	Format string `yaml:"format"` // "text" (raw bytes) or "sse" (event stream)
}

// Config is the genfs.yaml schema.
type Config struct {
	Name      string       `yaml:"name"`
	ChunkSize int          `yaml:"chunk-size"` // bytes per read for raw sources
	ExportDir string       `yaml:"export-dir"` // where completed sessions are written
	LogLevel  string       `yaml:"log-level"`  // quiet, error, info, debug
	Preview   bool         `yaml:"preview"`    // print highlighted file contents after a run
	Source    SourceConfig `yaml:"source"`
}

// Default returns the configuration used when no genfs.yaml exists.
func Default() *Config {
	cfg := &Config{Name: "genfs"}
	setDefaults(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path if it exists, falling back to defaults when it
// does not.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
