// Package config loads application settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the presentation-layer settings. Simulation behavior
// (rule, rate bounds) is fixed by the engine and not configurable.
type Config struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
	TPS      int     `yaml:"tps"`
	Seed     int64   `yaml:"seed"`
	// Rate is the startup auto-step interval in seconds. The engine
	// clamps it to its own bounds.
	Rate float64    `yaml:"rate"`
	Soup SoupConfig `yaml:"soup"`
}

// SoupConfig shapes the noise soup seeded by the G key and bench runs.
type SoupConfig struct {
	Radius  int     `yaml:"radius"`
	Density float64 `yaml:"density"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Width:    1000,
		Height:   700,
		CellSize: 10,
		TPS:      60,
		Seed:     42,
		Rate:     0.2,
		Soup: SoupConfig{
			Radius:  40,
			Density: 0.45,
		},
	}
}

// Load reads a YAML config file and merges it over the defaults. An
// empty path or a missing file returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces nonsensical values with their defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.CellSize <= 0 {
		c.CellSize = def.CellSize
	}
	if c.TPS <= 0 {
		c.TPS = def.TPS
	}
	if c.Rate <= 0 {
		c.Rate = def.Rate
	}
	if c.Soup.Radius <= 0 {
		c.Soup.Radius = def.Soup.Radius
	}
	if c.Soup.Density <= 0 || c.Soup.Density > 1 {
		c.Soup.Density = def.Soup.Density
	}
}
