// Package page models the scrolling document the mesh is drawn behind. Its
// only job for the mesh is to report where the highlighted section currently
// sits in the viewport.
package page

import (
	"math"

	"netmesh/internal/mesh"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Config describes the document layout in document coordinates.
type Config struct {
	Height         float64 `yaml:"height"`
	SectionTop     float64 `yaml:"section_top"`
	SectionHeight  float64 `yaml:"section_height"`
	ScrollDuration float64 `yaml:"scroll_duration"`
	WheelStep      float64 `yaml:"wheel_step"`
	Background     string  `yaml:"background"`
	SectionColor   string  `yaml:"section_color"`
}

// DefaultConfig returns a three-screen page with a highlighted section in the
// middle.
func DefaultConfig() Config {
	return Config{
		Height:         2400,
		SectionTop:     900,
		SectionHeight:  600,
		ScrollDuration: 0.35,
		WheelStep:      120,
		Background:     "#FFFFFF",
		SectionColor:   "#2E6DA4",
	}
}

// Page tracks the scroll offset of a document of fixed height.
type Page struct {
	cfg       Config
	viewportH float64

	scroll float64
	target float64
	tween  *gween.Tween
}

// New returns a page scrolled to the top.
func New(cfg Config) *Page {
	return &Page{cfg: cfg}
}

// Config returns the page layout.
func (p *Page) Config() Config { return p.cfg }

// SetViewportHeight records how much of the page is visible and re-clamps the
// scroll offset.
func (p *Page) SetViewportHeight(h float64) {
	if h < 0 || math.IsNaN(h) {
		h = 0
	}
	p.viewportH = h
	p.scroll = p.clamp(p.scroll)
	p.target = p.clamp(p.target)
}

// MaxScroll is the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	return math.Max(0, p.cfg.Height-p.viewportH)
}

// Scroll returns the current scroll offset.
func (p *Page) Scroll() float64 { return p.scroll }

// Target returns the offset the page is scrolling towards.
func (p *Page) Target() float64 { return p.target }

// Scrolling reports whether a scroll animation is in progress.
func (p *Page) Scrolling() bool { return p.tween != nil }

func (p *Page) clamp(y float64) float64 {
	if math.IsNaN(y) {
		return 0
	}
	return math.Min(math.Max(y, 0), p.MaxScroll())
}

// ScrollTo animates the offset to y, clamped to the page.
func (p *Page) ScrollTo(y float64) {
	p.target = p.clamp(y)
	if p.cfg.ScrollDuration <= 0 || p.target == p.scroll {
		p.scroll = p.target
		p.tween = nil
		return
	}
	p.tween = gween.New(float32(p.scroll), float32(p.target), float32(p.cfg.ScrollDuration), ease.OutCubic)
}

// ScrollBy animates the offset by dy relative to the current target, so
// repeated wheel ticks accumulate.
func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.target + dy)
}

// Wheel scrolls by wheel notches; positive notches scroll up like ebiten's
// wheel convention.
func (p *Page) Wheel(notches float64) {
	if notches == 0 {
		return
	}
	p.ScrollBy(-notches * p.cfg.WheelStep)
}

// Update advances the scroll animation by dt seconds.
func (p *Page) Update(dt float64) {
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(float32(dt))
	p.scroll = float64(v)
	if done {
		p.scroll = p.target
		p.tween = nil
	}
}

// Section returns the highlighted section in viewport coordinates without
// clipping to the viewport.
func (p *Page) Section() mesh.Region {
	if p.cfg.SectionHeight <= 0 {
		return mesh.Region{}
	}
	top := p.cfg.SectionTop - p.scroll
	return mesh.Region{Top: top, Bottom: top + p.cfg.SectionHeight}
}

// RegionBounds implements mesh.RegionProvider: the visible part of the
// section, or an empty region when it is scrolled out of view.
func (p *Page) RegionBounds() mesh.Region {
	return p.Section().Clamp(p.viewportH)
}
