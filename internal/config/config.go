// Package config loads converter settings from an optional JSON file and
// merges CLI flag overrides on top.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all configurable conversion settings.
type Config struct {
	OutputDir string `json:"output_dir"`

	// Conversion settings
	Format    string  `json:"format"`
	Colors    int     `json:"colors"`
	Method    string  `json:"palette_method"`
	Scale     float64 `json:"scale"`
	Quality   float64 `json:"quality"`
	MaxDim    int     `json:"max_dim"`
	Despeckle float64 `json:"despeckle"`
	Annotate  bool    `json:"annotate"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Format    string
	Colors    int
	Method    string
	Scale     float64
	Quality   float64
	Annotate  bool
}

// Resolve applies flag overrides and fills any remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Colors > 0 {
		c.Colors = flags.Colors
	}
	if flags.Method != "" {
		c.Method = flags.Method
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Quality > 0 {
		c.Quality = flags.Quality
	}
	if flags.Annotate {
		c.Annotate = true
	}

	if c.OutputDir == "" {
		c.OutputDir = "converted"
	}
	if c.Format == "" {
		c.Format = "svg"
	}
	if c.Colors <= 0 {
		c.Colors = 16
	}
	if c.Scale <= 0 {
		c.Scale = 1.0
	}
	if c.Quality <= 0 {
		c.Quality = 0.92
	}
	if c.MaxDim <= 0 {
		c.MaxDim = 1024
	}
}
