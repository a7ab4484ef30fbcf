// Package config loads penrose settings from YAML files.
package config

import (
	"fmt"
	"os"

	"github.com/gogpu/penrose"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a penrose run.
type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Depth      int     `yaml:"depth"`
	Tiling     string  `yaml:"tiling"` // rhomb | kitedart
	BaseLength float64 `yaml:"base_length"`
	Output     string  `yaml:"output"`
	HUD        *bool   `yaml:"hud"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if _, err := cfg.Family(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Width <= 0 {
		c.Width = penrose.DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = penrose.DefaultHeight
	}
	if c.Depth < 0 {
		c.Depth = 0
	}
	if c.Tiling == "" {
		c.Tiling = "rhomb"
	}
	if c.BaseLength <= 0 {
		c.BaseLength = penrose.DefaultBaseLength
	}
	if c.Output == "" {
		c.Output = "penrose.png"
	}
	if c.HUD == nil {
		hud := true
		c.HUD = &hud
	}
}

// Family returns the tiling family named by Tiling.
func (c *Config) Family() (penrose.Family, error) {
	return penrose.ParseFamily(c.Tiling)
}

// ShowHUD reports whether the status text should be drawn.
func (c *Config) ShowHUD() bool {
	return c.HUD == nil || *c.HUD
}

// Options converts the configuration into snapshot options.
// It fails if Tiling does not name a tiling family.
func (c *Config) Options() ([]penrose.Option, error) {
	family, err := c.Family()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []penrose.Option{
		penrose.WithFamily(family),
		penrose.WithDepth(c.Depth),
		penrose.WithBaseLength(c.BaseLength),
		penrose.WithCanvasSize(c.Width, c.Height),
	}, nil
}
