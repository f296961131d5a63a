package mesh

import (
	"image/color"
	"math"
)

// Stats counts what a single DrawNetwork call produced.
type Stats struct {
	Nodes  int
	Links  int
	Culled int
}

// Renderer draws a node set as discs joined by edges between close pairs.
type Renderer struct {
	cfg Config
}

// NewRenderer returns a renderer for cfg.
func NewRenderer(cfg Config) Renderer {
	return Renderer{cfg: cfg}
}

// Connected reports whether a and b are close enough to be joined. The
// bounding-box test runs first; it can only reject pairs the exact test would
// reject too as long as ConnectDistanceFactor <= PrefilterBoxFactor.
func Connected(a, b Node, cfg Config) bool {
	ok, _ := connected(a, b, cfg.PrefilterBox(), cfg.ConnectDistance())
	return ok
}

func connected(a, b Node, box, limit float64) (ok, culled bool) {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if math.Abs(dx) > box || math.Abs(dy) > box {
		return false, true
	}
	return dx*dx+dy*dy < limit*limit, false
}

// DrawNetwork draws every node as a filled disc and strokes a line between
// each unordered pair closer than the connect distance. Node state is not
// modified.
func (r Renderer) DrawNetwork(s Surface, nodes []Node, c color.Color) Stats {
	box := r.cfg.PrefilterBox()
	limit := r.cfg.ConnectDistance()
	st := Stats{Nodes: len(nodes)}
	for i := range nodes {
		p := nodes[i]
		s.FillCircle(p.X, p.Y, r.cfg.NodeRadius, c)
		for j := i + 1; j < len(nodes); j++ {
			q := nodes[j]
			ok, culled := connected(p, q, box, limit)
			if culled {
				st.Culled++
			}
			if !ok {
				continue
			}
			s.StrokeLine(p.X, p.Y, q.X, q.Y, c, r.cfg.LineWidth)
			st.Links++
		}
	}
	return st
}
