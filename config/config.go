// Package config holds tool defaults loadable from an optional yaml
// file, so frequently used gap/layout settings survive between runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/imposa/geom"
)

// Config carries the user-tunable defaults for both tools.
type Config struct {
	Gap        float64 `yaml:"gap"`
	Layout     string  `yaml:"layout"`
	SizeFactor float64 `yaml:"size_factor"`

	// PageSize overrides the per-tool default sheet size when set.
	PageSize string `yaml:"page_size"`
}

// Default returns the built-in defaults. PageSize is left empty so
// each tool keeps its own default sheet size.
func Default() *Config {
	return &Config{
		Gap:        20,
		Layout:     "side-by-side",
		SizeFactor: 1.0,
	}
}

// Load reads configuration from a yaml file. Fields missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns defaults if path is
// empty or does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save writes the configuration to a yaml file, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Orientation resolves the configured layout name.
func (c *Config) Orientation() (geom.Layout, error) {
	return geom.ParseLayout(c.Layout)
}

// Sheet resolves the configured page size name. Call only when
// PageSize is set.
func (c *Config) Sheet() (geom.Size, error) {
	switch c.PageSize {
	case "a4", "A4":
		return geom.PageSizeA4, nil
	case "letter", "Letter":
		return geom.PageSizeLetter, nil
	default:
		return geom.Size{}, fmt.Errorf("unsupported page size %q", c.PageSize)
	}
}
