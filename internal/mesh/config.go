package mesh

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"

	"netmesh/internal/core"
)

// Config holds every tunable of the mesh. Lengths are in logical (CSS-like)
// pixels, not device pixels.
type Config struct {
	Spacing                float64 `yaml:"spacing"`
	JitterFactor           float64 `yaml:"jitter_factor"`
	PointerInfluenceRadius float64 `yaml:"pointer_influence_radius"`
	NodeRadius             float64 `yaml:"node_radius"`
	LineWidth              float64 `yaml:"line_width"`
	BaseColor              string  `yaml:"base_color"`
	AccentColor            string  `yaml:"accent_color"`
	ConnectDistanceFactor  float64 `yaml:"connect_distance_factor"`
	PrefilterBoxFactor     float64 `yaml:"prefilter_box_factor"`
	RelaxDivisor           float64 `yaml:"relax_divisor"`
	ResponsivenessMin      float64 `yaml:"responsiveness_min"`
	ResponsivenessMax      float64 `yaml:"responsiveness_max"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Spacing:                250,
		JitterFactor:           0.5,
		PointerInfluenceRadius: 200,
		NodeRadius:             4,
		LineWidth:              2,
		BaseColor:              "#E0ECF8",
		AccentColor:            "#164776",
		ConnectDistanceFactor:  1.4,
		PrefilterBoxFactor:     1.5,
		RelaxDivisor:           20,
		ResponsivenessMin:      5,
		ResponsivenessMax:      15,
	}
}

// ConnectDistance is the exclusive upper bound on the length of a drawn edge.
func (c Config) ConnectDistance() float64 { return c.Spacing * c.ConnectDistanceFactor }

// PrefilterBox is the half-size of the bounding box used to cull pairs before
// the exact distance test.
func (c Config) PrefilterBox() float64 { return c.Spacing * c.PrefilterBoxFactor }

// Validate reports the first problem that would make the mesh misbehave.
func (c Config) Validate() error {
	var errs []error
	if !(c.Spacing > 0) || math.IsInf(c.Spacing, 0) {
		errs = append(errs, fmt.Errorf("spacing must be positive, got %v", c.Spacing))
	}
	if c.JitterFactor < 0 || c.JitterFactor > 1 || math.IsNaN(c.JitterFactor) {
		errs = append(errs, fmt.Errorf("jitter_factor must be within [0,1], got %v", c.JitterFactor))
	}
	if c.PointerInfluenceRadius < 0 || math.IsNaN(c.PointerInfluenceRadius) {
		errs = append(errs, fmt.Errorf("pointer_influence_radius must not be negative, got %v", c.PointerInfluenceRadius))
	}
	if c.NodeRadius < 0 || c.LineWidth < 0 {
		errs = append(errs, errors.New("node_radius and line_width must not be negative"))
	}
	if !(c.RelaxDivisor > 1) {
		errs = append(errs, fmt.Errorf("relax_divisor must be greater than 1, got %v", c.RelaxDivisor))
	}
	if c.ResponsivenessMax < c.ResponsivenessMin {
		errs = append(errs, fmt.Errorf("responsiveness range [%v,%v] is inverted", c.ResponsivenessMin, c.ResponsivenessMax))
	}
	if !(c.ConnectDistanceFactor > 0) {
		errs = append(errs, fmt.Errorf("connect_distance_factor must be positive, got %v", c.ConnectDistanceFactor))
	}
	// A prefilter tighter than the connect distance would drop real edges.
	if c.ConnectDistanceFactor > c.PrefilterBoxFactor {
		errs = append(errs, fmt.Errorf("prefilter_box_factor %v is smaller than connect_distance_factor %v",
			c.PrefilterBoxFactor, c.ConnectDistanceFactor))
	}
	if _, err := core.ParseHexColor(c.BaseColor); err != nil {
		errs = append(errs, fmt.Errorf("base_color: %w", err))
	}
	if _, err := core.ParseHexColor(c.AccentColor); err != nil {
		errs = append(errs, fmt.Errorf("accent_color: %w", err))
	}
	return errors.Join(errs...)
}

// FromMap overlays flag-style key/value pairs on base. Unknown keys and
// unparsable or negative values are logged and leave base untouched.
func FromMap(base Config, kv map[string]string) Config {
	c := base
	floats := map[string]*float64{
		"spacing":                  &c.Spacing,
		"jitter_factor":            &c.JitterFactor,
		"pointer_influence_radius": &c.PointerInfluenceRadius,
		"node_radius":              &c.NodeRadius,
		"line_width":               &c.LineWidth,
		"connect_distance_factor":  &c.ConnectDistanceFactor,
		"prefilter_box_factor":     &c.PrefilterBoxFactor,
		"relax_divisor":            &c.RelaxDivisor,
		"responsiveness_min":       &c.ResponsivenessMin,
		"responsiveness_max":       &c.ResponsivenessMax,
	}
	colors := map[string]*string{
		"base_color":   &c.BaseColor,
		"accent_color": &c.AccentColor,
	}
	for key, v := range kv {
		if dst, ok := floats[key]; ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil || parsed < 0 {
				log.Printf("mesh: ignoring %s=%q", key, v)
				continue
			}
			*dst = parsed
			continue
		}
		if dst, ok := colors[key]; ok {
			if _, err := core.ParseHexColor(v); err != nil {
				log.Printf("mesh: ignoring %s=%q: %v", key, v, err)
				continue
			}
			*dst = v
			continue
		}
		log.Printf("mesh: unknown key %q", key)
	}
	if c.JitterFactor > 1 {
		c.JitterFactor = 1
	}
	if c.ResponsivenessMax < c.ResponsivenessMin {
		c.ResponsivenessMax = c.ResponsivenessMin
	}
	return c
}
