// Package config provides configuration loading for voxview. It handles
// loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML.
// Layout constants live here instead of file-scope globals so that layout
// and hit-testing always read from one explicit place.
type Config struct {
	// Window parameters
	Window struct {
		// Width is the initial window width in pixels
		Width int `yaml:"width"`

		// Height is the initial window height in pixels
		Height int `yaml:"height"`

		// Title is the window title
		Title string `yaml:"title"`
	} `yaml:"window"`

	// Layout parameters for view placement and hit-testing
	Layout struct {
		// ToolbarHeight is the height of the widget band above the canvases
		ToolbarHeight int `yaml:"toolbarHeight"`

		// ViewSpacing is the horizontal gap between adjacent views
		ViewSpacing int `yaml:"viewSpacing"`

		// ScrollbarWidth is the width reserved left of each view for its
		// slice scrollbar
		ScrollbarWidth int `yaml:"scrollbarWidth"`
	} `yaml:"layout"`

	// Render parameters
	Render struct {
		// TargetFPS caps the frame loop frequency
		TargetFPS int `yaml:"targetFPS"`

		// Background is the grey level cleared behind the views
		Background uint8 `yaml:"background"`
	} `yaml:"render"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Window.Width = 1024
	cfg.Window.Height = 768
	cfg.Window.Title = "voxview - Volume Viewer"

	cfg.Layout.ToolbarHeight = 64
	cfg.Layout.ViewSpacing = 10
	cfg.Layout.ScrollbarWidth = 20

	cfg.Render.TargetFPS = 60
	cfg.Render.Background = 40

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		return cfg, nil
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}
