// Package config holds the viewer configuration loaded from YAML with
// layered defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Viewport ViewportConfig `yaml:"viewport"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ViewportConfig holds camera and render-loop settings.
type ViewportConfig struct {
	// AutoRotate spins the camera about the model when the user is not
	// dragging.
	AutoRotate bool `yaml:"auto_rotate"`
	// RotateSpeed is the auto-rotate rate in radians per second.
	RotateSpeed float64 `yaml:"rotate_speed"`
	// FrameDelayMS throttles the render loop between frames.
	FrameDelayMS int `yaml:"frame_delay_ms"`
	// Supersample renders frames at a multiple of the window size.
	Supersample int `yaml:"supersample"`
	// Background is the clear color as a hex string.
	Background string `yaml:"background"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "stator",
			Width:  960,
			Height: 720,
		},
		Viewport: ViewportConfig{
			AutoRotate:   true,
			RotateSpeed:  0.6,
			FrameDelayMS: 16,
			Supersample:  1,
			Background:   "#1a1d21",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path when
// path is non-empty. A missing explicit file is an error; flags applied
// by the caller take priority over both.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Viewport.RotateSpeed < 0 {
		return fmt.Errorf("rotate speed must not be negative, got %g", c.Viewport.RotateSpeed)
	}
	if c.Viewport.Supersample < 1 {
		return fmt.Errorf("supersample must be at least 1, got %d", c.Viewport.Supersample)
	}
	return nil
}
