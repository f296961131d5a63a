package page

import (
	"math"
	"testing"
)

func newPage(duration float64) *Page {
	cfg := DefaultConfig()
	cfg.ScrollDuration = duration
	p := New(cfg)
	p.SetViewportHeight(800)
	return p
}

func TestRegionBoundsFollowScroll(t *testing.T) {
	p := newPage(0)
	if r := p.RegionBounds(); !r.Empty() {
		t.Fatalf("section below the fold reported %+v", r)
	}
	p.ScrollTo(500)
	r := p.RegionBounds()
	if r.Top != 400 || r.Bottom != 800 {
		t.Fatalf("region = %+v, want [400,800)", r)
	}
	p.ScrollTo(1000)
	r = p.RegionBounds()
	if r.Top != 0 || r.Bottom != 500 {
		t.Fatalf("region = %+v, want [0,500)", r)
	}
	p.ScrollTo(1600)
	if r := p.RegionBounds(); !r.Empty() {
		t.Fatalf("section above the viewport reported %+v", r)
	}
}

func TestScrollClamped(t *testing.T) {
	p := newPage(0)
	p.ScrollTo(-100)
	if p.Scroll() != 0 {
		t.Fatalf("scroll = %v, want 0", p.Scroll())
	}
	p.ScrollTo(1e9)
	if p.Scroll() != p.MaxScroll() || p.MaxScroll() != 1600 {
		t.Fatalf("scroll = %v max = %v, want 1600", p.Scroll(), p.MaxScroll())
	}
	p.SetViewportHeight(2000)
	if p.Scroll() != 400 {
		t.Fatalf("scroll after taller viewport = %v, want 400", p.Scroll())
	}
}

func TestScrollAnimation(t *testing.T) {
	p := newPage(0.5)
	p.ScrollBy(400)
	if !p.Scrolling() {
		t.Fatal("expected animation in progress")
	}
	prev := p.Scroll()
	for i := 0; i < 10; i++ {
		p.Update(0.05)
		if p.Scroll() < prev {
			t.Fatalf("scroll moved backwards: %v -> %v", prev, p.Scroll())
		}
		prev = p.Scroll()
	}
	p.Update(0.1)
	if p.Scrolling() || p.Scroll() != 400 {
		t.Fatalf("scroll = %v scrolling=%v, want settled at 400", p.Scroll(), p.Scrolling())
	}
}

func TestWheelAccumulates(t *testing.T) {
	p := newPage(0.3)
	p.Wheel(-1)
	p.Wheel(-1)
	if p.Target() != 240 {
		t.Fatalf("target = %v, want 240", p.Target())
	}
	for p.Scrolling() {
		p.Update(1.0 / 60)
	}
	if math.Abs(p.Scroll()-240) > 1e-9 {
		t.Fatalf("scroll = %v, want 240", p.Scroll())
	}
}

func TestNoSection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SectionHeight = 0
	p := New(cfg)
	p.SetViewportHeight(800)
	p.ScrollTo(900)
	if r := p.RegionBounds(); !r.Empty() {
		t.Fatalf("page without a section reported %+v", r)
	}
}
