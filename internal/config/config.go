package config

import (
	"errors"
	"fmt"
	"os"

	"netmesh/internal/core"
	"netmesh/internal/mesh"
	"netmesh/internal/page"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 800
	DefaultTPS    = 60
	DefaultTitle  = "netmesh"
)

// Window controls the desktop window hosting the mesh.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// Config is the on-disk configuration file.
type Config struct {
	Mesh   mesh.Config `yaml:"mesh"`
	Page   page.Config `yaml:"page"`
	Window Window      `yaml:"window"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Mesh: mesh.DefaultConfig(),
		Page: page.DefaultConfig(),
		Window: Window{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			TPS:    DefaultTPS,
			Title:  DefaultTitle,
		},
	}
}

// Load reads path on top of the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Mesh.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("mesh: %w", err))
	}
	if c.Page.Height < 0 || c.Page.SectionHeight < 0 {
		errs = append(errs, errors.New("page: height and section_height must not be negative"))
	}
	if _, err := core.ParseHexColor(c.Page.Background); err != nil {
		errs = append(errs, fmt.Errorf("page: background: %w", err))
	}
	if _, err := core.ParseHexColor(c.Page.SectionColor); err != nil {
		errs = append(errs, fmt.Errorf("page: section_color: %w", err))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window: tps must be positive, got %d", c.Window.TPS))
	}
	return errors.Join(errs...)
}
