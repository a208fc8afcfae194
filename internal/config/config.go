package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `json:"display"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	// Color controls styled output: "auto", "on" or "off".
	Color string `json:"color"`
	// ShowInsights toggles the performance commentary section.
	ShowInsights *bool `json:"show_insights,omitempty"`
	// Chart toggles the cumulative-time curve.
	Chart *bool `json:"chart,omitempty"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	yes := true
	return Config{
		Display: DisplayConfig{
			Color:        "auto",
			ShowInsights: &yes,
			Chart:        &yes,
		},
	}
}

// Load reads the configuration from ~/.pacecalc/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.Color == "" {
		cfg.Display.Color = defaults.Display.Color
	}
	if cfg.Display.ShowInsights == nil {
		cfg.Display.ShowInsights = defaults.Display.ShowInsights
	}
	if cfg.Display.Chart == nil {
		cfg.Display.Chart = defaults.Display.Chart
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.pacecalc/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks if the config has valid values
func (c *Config) Validate() error {
	switch c.Display.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("display.color must be \"auto\", \"on\" or \"off\", got %q", c.Display.Color)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".pacecalc", "config.json"), nil
}
