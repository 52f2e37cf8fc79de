package config

import (
	"fmt"
	"strings"
)

var validFormats = map[string]bool{
	"":     true,
	"text": true,
	"sse":  true,
}

var validLogLevels = map[string]bool{
	"":      true,
	"quiet": true,
	"error": true,
	"info":  true,
	"debug": true,
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.Name == "" {
		return fmt.Errorf("config: 'name' is required")
	}
	if cfg.ChunkSize < 0 {
		return fmt.Errorf("config: chunk-size must be >= 0")
	}
	if !validFormats[cfg.Source.Format] {
		return fmt.Errorf("config: source.format %q is unknown (must be text or sse)", cfg.Source.Format)
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("config: log-level %q is unknown (must be quiet, error, info, or debug)", cfg.LogLevel)
	}
	if cfg.Source.URL != "" &&
		!strings.HasPrefix(cfg.Source.URL, "http://") &&
		!strings.HasPrefix(cfg.Source.URL, "https://") {
		return fmt.Errorf("config: source.url %q must be an http(s) URL", cfg.Source.URL)
	}
	setDefaults(cfg)
	return nil
}

func setDefaults(cfg *Config) {
	if cfg.ExportDir == "" {
		cfg.ExportDir = "generated"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}
	if cfg.Source.Format == "" {
		cfg.Source.Format = "text"
	}
}
