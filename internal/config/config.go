// Package config resolves the bootstrap settings from defaults, a YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"vkhello/internal/diag"
)

// Environment variables that override file settings.
const (
	EnvDebug  = "VKHELLO_DEBUG"
	EnvWidth  = "VKHELLO_WIDTH"
	EnvHeight = "VKHELLO_HEIGHT"
	EnvTitle  = "VKHELLO_TITLE"
)

// Config holds the window and instance settings.
type Config struct {
	Debug           bool     `yaml:"debug"`
	Timestamps      bool     `yaml:"timestamps"`
	Width           int      `yaml:"width"`
	Height          int      `yaml:"height"`
	Title           string   `yaml:"title"`
	ApplicationName string   `yaml:"applicationName"`
	EngineName      string   `yaml:"engineName"`
	Layers          []string `yaml:"layers,omitempty"`

	// Colors overrides the display color of a logger, keyed by its tag
	// (INIT, MAIN_LOOP, CLEANUP, MAIN, ERROR).
	Colors map[string]string `yaml:"colors,omitempty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Debug:           true,
		Width:           2560,
		Height:          1440,
		Title:           "Vulkan",
		ApplicationName: "Hello Triangle",
		EngineName:      "No Engine",
	}
}

// Load returns the defaults overlaid with the YAML file at path and then
// the environment. An empty path means DefaultPath. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = b
	}
	if v, ok := lookup(EnvWidth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWidth, err)
		}
		c.Width = n
	}
	if v, ok := lookup(EnvHeight); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHeight, err)
		}
		c.Height = n
	}
	if v, ok := lookup(EnvTitle); ok {
		c.Title = v
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// Validate reports settings the window system would reject.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("empty window title")
	}
	for tag, name := range c.Colors {
		if _, err := diag.ParseColor(name); err != nil {
			return fmt.Errorf("colors.%s: %w", tag, err)
		}
	}
	return nil
}

// Color returns the configured color for tag, or def when none is set or
// the name is unknown.
func (c Config) Color(tag string, def diag.Color) diag.Color {
	name, ok := c.Colors[tag]
	if !ok {
		return def
	}
	col, err := diag.ParseColor(name)
	if err != nil {
		return def
	}
	return col
}

// YAML renders c as a YAML document.
func (c Config) YAML() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
