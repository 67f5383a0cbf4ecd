package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the HUD demo configuration, read from hud.yml.
type Config struct {
	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
		VSync  bool   `yaml:"vsync"`
	} `yaml:"window"`

	Log struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`

	// StatsInterval is how often system statistics are sampled.
	StatsInterval time.Duration `yaml:"stats_interval"`

	// Color is the packed 0xAARRGGBB color of the overlay text.
	Color uint32 `yaml:"color"`
}

func defaultConfig() Config {
	var c Config
	c.Window.Width = 800
	c.Window.Height = 600
	c.Window.Title = "gl2d hud"
	c.Window.VSync = true
	c.Log.Level = "info"
	c.Log.File = "hud.slog"
	c.StatsInterval = time.Second
	c.Color = 0xFFFFFFFF
	return c
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("config file not found, using defaults", slog.String("path", path))
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.StatsInterval <= 0 {
		return fmt.Errorf("invalid stats_interval %v", c.StatsInterval)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
