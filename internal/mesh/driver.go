package mesh

import (
	"fmt"
	"image/color"
	"math"

	"netmesh/internal/core"
)

// Viewport is the visible area in logical pixels plus the device pixel ratio.
type Viewport struct {
	Width       float64
	Height      float64
	DeviceScale float64
}

// Scale returns DeviceScale, treating unset or invalid values as 1.
func (v Viewport) Scale() float64 {
	if !(v.DeviceScale > 0) || math.IsInf(v.DeviceScale, 0) {
		return 1
	}
	return v.DeviceScale
}

// Pixels returns the backing surface size needed to draw v at native
// sharpness.
func (v Viewport) Pixels() core.Size {
	s := v.Scale()
	return core.Size{W: int(math.Ceil(v.Width * s)), H: int(math.Ceil(v.Height * s))}
}

// FrameStats summarizes one Frame call.
type FrameStats struct {
	Base        Stats
	Accent      Stats
	Region      Region
	AccentDrawn bool
}

// Driver owns the node set and input state and composes one frame at a time.
// It is not safe for concurrent use: input handlers, Resize and Frame are all
// expected to run on the host's single update/draw thread.
type Driver struct {
	cfg      Config
	base     color.RGBA
	accent   color.RGBA
	renderer Renderer
	rng      *core.RNG

	view    Viewport
	nodes   []Node
	pointer Pointer
	region  RegionProvider

	generation int
	last       FrameStats
}

// NewDriver validates cfg and returns a driver with an empty node set; call
// Resize to lay out the first grid. A nil region provider highlights nothing
// and a nil rng is seeded from the clock.
func NewDriver(cfg Config, region RegionProvider, rng *core.RNG) (*Driver, error) {
	if rng == nil {
		rng = core.NewTimeRNG()
	}
	d := &Driver{rng: rng}
	if err := d.SetConfig(cfg); err != nil {
		return nil, err
	}
	d.SetRegionProvider(region)
	return d, nil
}

// SetConfig swaps the configuration. Geometry changes (spacing, jitter,
// responsiveness range) rebuild the node set; everything else applies to the
// next frame without disturbing the nodes.
func (d *Driver) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("mesh config: %w", err)
	}
	base, _ := core.ParseHexColor(cfg.BaseColor)
	accent, _ := core.ParseHexColor(cfg.AccentColor)
	rebuild := d.nodes != nil && (cfg.Spacing != d.cfg.Spacing ||
		cfg.JitterFactor != d.cfg.JitterFactor ||
		cfg.ResponsivenessMin != d.cfg.ResponsivenessMin ||
		cfg.ResponsivenessMax != d.cfg.ResponsivenessMax)
	d.cfg = cfg
	d.base, d.accent = base, accent
	d.renderer = NewRenderer(cfg)
	d.pointer.Radius = cfg.PointerInfluenceRadius
	if rebuild {
		d.Rebuild()
	}
	return nil
}

// SetRegionProvider replaces the source of the highlighted band.
func (d *Driver) SetRegionProvider(p RegionProvider) {
	if p == nil {
		p = NoRegion{}
	}
	d.region = p
}

// Resize adopts a new viewport and lays out a fresh grid for it. Every node
// is replaced, so any displacement in flight is lost; this is also how the
// first grid is built. Resizing to the current viewport does nothing and
// reports false.
func (d *Driver) Resize(v Viewport) bool {
	if v == d.view && d.nodes != nil {
		return false
	}
	d.view = v
	d.Rebuild()
	return true
}

// Rebuild discards the node set and lays out a new jittered grid for the
// current viewport.
func (d *Driver) Rebuild() {
	d.nodes = BuildGrid(d.view.Width, d.view.Height, d.cfg, d.rng)
	if d.nodes == nil {
		d.nodes = []Node{}
	}
	d.generation++
}

// PointerMoved records the pointer position in logical viewport coordinates.
func (d *Driver) PointerMoved(x, y float64) { d.pointer.Move(x, y) }

// PointerLeft unsets the pointer.
func (d *Driver) PointerLeft() { d.pointer.Clear() }

// Frame clears s, advances the simulation one step and draws the base layer
// everywhere and the accent layer inside the highlighted band only.
func (d *Driver) Frame(s Surface) FrameStats {
	w, h := d.view.Width, d.view.Height
	s.ClearRect(0, 0, w, h)

	Step(d.nodes, d.pointer, d.cfg)

	st := FrameStats{Base: d.renderer.DrawNetwork(s, d.nodes, d.base)}

	band := d.region.RegionBounds().Clamp(h)
	st.Region = band
	if !band.Empty() {
		s.ClearRect(0, band.Top, w, band.Height())
		st.Accent = d.drawAccent(s, band)
		st.AccentDrawn = true
	}
	d.last = st
	return st
}

func (d *Driver) drawAccent(s Surface, band Region) Stats {
	s.PushClipRect(0, band.Top, d.view.Width, band.Height())
	defer s.PopClip()
	return d.renderer.DrawNetwork(s, d.nodes, d.accent)
}

// Config returns the active configuration.
func (d *Driver) Config() Config { return d.cfg }

// Viewport returns the current viewport.
func (d *Driver) Viewport() Viewport { return d.view }

// Nodes exposes the current node set. The slice is replaced on every rebuild.
func (d *Driver) Nodes() []Node { return d.nodes }

// Pointer returns the current pointer state.
func (d *Driver) Pointer() Pointer { return d.pointer }

// Generation counts grid rebuilds.
func (d *Driver) Generation() int { return d.generation }

// LastFrame returns the stats of the most recent Frame call.
func (d *Driver) LastFrame() FrameStats { return d.last }

// Colors returns the parsed base and accent colors.
func (d *Driver) Colors() (base, accent color.RGBA) { return d.base, d.accent }
