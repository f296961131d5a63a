package mesh

import (
	"math"

	"netmesh/internal/core"
)

// GridDims returns the number of rows and nodes per row BuildGrid produces
// for a w x h viewport.
func GridDims(w, h, spacing float64) (rows, cols int) {
	if !(w > 0) || !(h > 0) || !(spacing > 0) {
		return 0, 0
	}
	return int(math.Ceil((h + spacing) / spacing)), int(math.Ceil((w + spacing) / spacing))
}

// BuildGrid lays out nodes covering [0,w+S) x [0,h+S) at pitch S. Odd rows are
// shifted by S/2 and every position is jittered by up to S*J/2 on each axis.
// A nil rng draws from the wall clock.
func BuildGrid(w, h float64, cfg Config, rng *core.RNG) []Node {
	rows, cols := GridDims(w, h, cfg.Spacing)
	if rows == 0 || cols == 0 {
		return nil
	}
	if rng == nil {
		rng = core.NewTimeRNG()
	}
	s := cfg.Spacing
	span := s * cfg.JitterFactor
	nodes := make([]Node, 0, rows*cols)
	for r := 0; r < rows; r++ {
		y := float64(r) * s
		shift := 0.0
		if r%2 == 1 {
			shift = s / 2
		}
		for c := 0; c < cols; c++ {
			x := float64(c)*s + shift
			px := x + rng.Centered(span)
			py := y + rng.Centered(span)
			resp := rng.Range(cfg.ResponsivenessMin, cfg.ResponsivenessMax)
			nodes = append(nodes, NewNode(px, py, resp))
		}
	}
	return nodes
}
