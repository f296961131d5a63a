package mesh

import (
	"strconv"

	"netmesh/internal/core"
)

type tunable struct {
	control core.ParameterControl
	get     func(*Config) *float64
}

var tunables = []tunable{
	{
		control: core.ParameterControl{Key: "spacing", Label: "Spacing", Type: core.ParamTypeInt, Step: 10, Min: 40, HasMin: true, Max: 600, HasMax: true},
		get:     func(c *Config) *float64 { return &c.Spacing },
	},
	{
		control: core.ParameterControl{Key: "jitter_factor", Label: "Jitter", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		get:     func(c *Config) *float64 { return &c.JitterFactor },
	},
	{
		control: core.ParameterControl{Key: "pointer_influence_radius", Label: "Influence", Type: core.ParamTypeInt, Step: 10, Min: 0, HasMin: true, Max: 800, HasMax: true},
		get:     func(c *Config) *float64 { return &c.PointerInfluenceRadius },
	},
	{
		control: core.ParameterControl{Key: "node_radius", Label: "Node radius", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, HasMin: true, Max: 20, HasMax: true},
		get:     func(c *Config) *float64 { return &c.NodeRadius },
	},
	{
		control: core.ParameterControl{Key: "line_width", Label: "Line width", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, HasMin: true, Max: 10, HasMax: true},
		get:     func(c *Config) *float64 { return &c.LineWidth },
	},
}

// Parameters reports the current value of every HUD tunable.
func (d *Driver) Parameters() []core.Parameter {
	out := make([]core.Parameter, 0, len(tunables))
	for _, t := range tunables {
		v := *t.get(&d.cfg)
		value := strconv.FormatFloat(v, 'f', -1, 64)
		if t.control.Type == core.ParamTypeInt {
			value = strconv.Itoa(int(v))
		}
		out = append(out, core.Parameter{Key: t.control.Key, Label: t.control.Label, Type: t.control.Type, Value: value})
	}
	return out
}

// ParameterControls lists the HUD-adjustable tunables.
func (d *Driver) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(tunables))
	for i, t := range tunables {
		out[i] = t.control
	}
	return out
}

// SetFloatParameter updates a tunable by key. It reports false for unknown
// keys and for values the resulting config rejects.
func (d *Driver) SetFloatParameter(key string, value float64) bool {
	for _, t := range tunables {
		if t.control.Key != key {
			continue
		}
		next := d.cfg
		*t.get(&next) = value
		return d.SetConfig(next) == nil
	}
	return false
}
