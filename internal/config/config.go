// Package config handles lexfmt configuration file loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lexfmt/lexfmt/internal/theme"
)

// ConfigFileName is the name of the lexfmt configuration file.
const ConfigFileName = "lexfmt.yaml"

// Color modes accepted by the `color` setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the lexfmt configuration.
type Config struct {
	// Theme is the name of the color theme to use
	// (default, dark, light, solarized, monokai).
	Theme string `yaml:"theme"`
	// Color controls colored output: auto, always, or never.
	Color string `yaml:"color"`
	// Path is the location of the loaded config file, empty when the
	// defaults are in effect.
	Path string `yaml:"-"`
}

// Load searches for lexfmt.yaml starting from the current working
// directory, walking up the directory tree. If no file is found, defaults
// apply.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return LoadFromPath(cwd)
}

// LoadFromPath searches for lexfmt.yaml starting from the given path,
// walking up the directory tree.
func LoadFromPath(startPath string) (*Config, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to resolve absolute path for %q: %w",
			startPath,
			err,
		)
	}

	currentPath := absPath
	for {
		configPath := filepath.Join(currentPath, ConfigFileName)

		if _, statErr := os.Stat(configPath); statErr == nil {
			cfg, err := parseConfigFile(configPath)
			if err != nil {
				return nil, err
			}
			cfg.Path = configPath

			if err := cfg.validate(); err != nil {
				return nil, fmt.Errorf(
					"invalid configuration in %s: %w",
					configPath,
					err,
				)
			}

			return cfg, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			break
		}
		currentPath = parentPath
	}

	return defaults(), nil
}

func defaults() *Config {
	return &Config{
		Theme: "default",
		Color: ColorAuto,
	}
}

// parseConfigFile reads and parses a lexfmt.yaml file.
func parseConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var yamlErr *yaml.TypeError
		if errors.As(err, &yamlErr) {
			return nil, fmt.Errorf("invalid YAML syntax: %v", yamlErr.Errors)
		}

		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Theme == "" {
		cfg.Theme = "default"
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}

	return &cfg, nil
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if _, err := theme.Get(c.Theme); err != nil {
		return fmt.Errorf(
			"unknown theme %q (available: %v)",
			c.Theme,
			theme.Available(),
		)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf(
			"color must be %s, %s, or %s",
			ColorAuto, ColorAlways, ColorNever,
		)
	}
}
