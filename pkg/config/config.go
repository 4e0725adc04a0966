// Package config provides configuration loading and management for so3ft.
// It handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Transform parameters
	Transform struct {
		// Bandwidth bounds the angular-momentum degrees included in the
		// transform (degrees 0 .. Bandwidth-1)
		Bandwidth int `yaml:"bandwidth"`

		// CacheCapacity bounds how many transform matrices are kept in memory
		CacheCapacity int `yaml:"cacheCapacity"`
	} `yaml:"transform"`

	// Grid parameters, used when the input file does not carry its own grid
	Grid struct {
		// Type selects the generator: "near-identity" or "equiangular"
		Type string `yaml:"type"`

		// MaxBeta bounds the polar angle of a near-identity grid in radians
		MaxBeta float64 `yaml:"maxBeta"`

		// MaxGamma bounds the final Euler angle of a near-identity grid in radians
		MaxGamma float64 `yaml:"maxGamma"`

		// NAlpha, NBeta and NGamma set the sample counts per Euler angle
		NAlpha int `yaml:"nAlpha"`
		NBeta  int `yaml:"nBeta"`
		NGamma int `yaml:"nGamma"`
	} `yaml:"grid"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default transform parameters
	cfg.Transform.Bandwidth = 4
	cfg.Transform.CacheCapacity = 32

	// Set default grid parameters
	cfg.Grid.Type = "near-identity"
	cfg.Grid.MaxBeta = math.Pi / 8
	cfg.Grid.MaxGamma = 2 * math.Pi
	cfg.Grid.NAlpha = 8
	cfg.Grid.NBeta = 3
	cfg.Grid.NGamma = 6

	// Set default output parameters
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable
func (cfg *Config) Validate() error {
	if cfg.Transform.Bandwidth < 1 {
		return fmt.Errorf("config: bandwidth must be positive, got %d", cfg.Transform.Bandwidth)
	}
	if cfg.Transform.CacheCapacity < 1 {
		return fmt.Errorf("config: cacheCapacity must be positive, got %d", cfg.Transform.CacheCapacity)
	}
	switch cfg.Grid.Type {
	case "near-identity", "equiangular":
	default:
		return fmt.Errorf("config: unknown grid type %q", cfg.Grid.Type)
	}
	if cfg.Grid.NAlpha < 1 || cfg.Grid.NBeta < 1 || cfg.Grid.NGamma < 1 {
		return fmt.Errorf("config: grid sample counts must be positive")
	}
	return nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
