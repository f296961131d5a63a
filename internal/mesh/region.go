package mesh

import "math"

// Region is the highlighted horizontal band in viewport coordinates. It always
// spans the full viewport width.
type Region struct {
	Top, Bottom float64
}

// Normalize collapses malformed bounds to the empty region.
func (r Region) Normalize() Region {
	if math.IsNaN(r.Top) || math.IsNaN(r.Bottom) || r.Bottom <= r.Top {
		return Region{}
	}
	return r
}

// Empty reports whether the band covers no rows.
func (r Region) Empty() bool { return !(r.Bottom > r.Top) }

// Height returns the band height, or zero when empty.
func (r Region) Height() float64 {
	if r.Empty() {
		return 0
	}
	return r.Bottom - r.Top
}

// Clamp restricts the band to [0, h).
func (r Region) Clamp(h float64) Region {
	r = r.Normalize()
	r.Top = math.Max(r.Top, 0)
	r.Bottom = math.Min(r.Bottom, h)
	return r.Normalize()
}

// RegionProvider supplies the current highlighted band. Implementations must
// return an empty Region when there is nothing to highlight.
type RegionProvider interface {
	RegionBounds() Region
}

// NoRegion never highlights anything.
type NoRegion struct{}

// RegionBounds implements RegionProvider.
func (NoRegion) RegionBounds() Region { return Region{} }

// StaticRegion highlights a fixed band.
type StaticRegion Region

// RegionBounds implements RegionProvider.
func (s StaticRegion) RegionBounds() Region { return Region(s) }
