package app

import (
	"fmt"

	"netmesh/internal/config"
	"netmesh/internal/core"
	"netmesh/internal/mesh"

	"github.com/spf13/pflag"
)

// Config represents the command-line parameters shared by the window and the
// headless commands. Flags that were set explicitly override the config file.
type Config struct {
	File    string
	Width   int
	Height  int
	TPS     int
	Seed    int64
	Spacing float64
	Jitter  float64
	Radius  float64
	Set     map[string]string
}

// NewConfig returns a Config populated with the file defaults.
func NewConfig() *Config {
	d := config.Default()
	return &Config{
		Width:   d.Window.Width,
		Height:  d.Window.Height,
		TPS:     d.Window.TPS,
		Spacing: d.Mesh.Spacing,
		Jitter:  d.Mesh.JitterFactor,
		Radius:  d.Mesh.PointerInfluenceRadius,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&c.File, "config", "c", c.File, "config file path (yaml)")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in logical pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in logical pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "grid jitter seed (0 seeds from the clock)")
	fs.Float64Var(&c.Spacing, "spacing", c.Spacing, "grid pitch")
	fs.Float64Var(&c.Jitter, "jitter", c.Jitter, "jitter factor in [0,1]")
	fs.Float64Var(&c.Radius, "radius", c.Radius, "pointer influence radius")
	fs.StringToStringVar(&c.Set, "set", c.Set, "mesh setting as key=value, e.g. --set relax_divisor=30 (repeatable)")
}

// Resolve loads the config file, if any, then applies --set pairs and finally
// the named flags the user set.
func (c *Config) Resolve(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if c.File != "" {
		loaded, err := config.Load(c.File)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	changed := func(name string) bool { return fs != nil && fs.Changed(name) }
	if changed("set") {
		cfg.Mesh = mesh.FromMap(cfg.Mesh, c.Set)
	}
	if changed("width") {
		cfg.Window.Width = c.Width
	}
	if changed("height") {
		cfg.Window.Height = c.Height
	}
	if changed("tps") {
		cfg.Window.TPS = c.TPS
	}
	if changed("spacing") {
		cfg.Mesh.Spacing = c.Spacing
	}
	if changed("jitter") {
		cfg.Mesh.JitterFactor = c.Jitter
	}
	if changed("radius") {
		cfg.Mesh.PointerInfluenceRadius = c.Radius
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RNG returns the jitter source selected by --seed.
func (c *Config) RNG() *core.RNG {
	if c.Seed == 0 {
		return core.NewTimeRNG()
	}
	return core.NewRNG(c.Seed)
}
