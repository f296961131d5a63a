package mesh

import (
	"math"
	"testing"

	"netmesh/internal/core"
)

func TestGridDims(t *testing.T) {
	cases := []struct {
		w, h, s    float64
		rows, cols int
	}{
		{1000, 800, 250, 5, 5},
		{1920, 1080, 250, 6, 9},
		{1, 1, 250, 2, 2},
		{250, 250, 250, 2, 2},
		{0, 800, 250, 0, 0},
		{1000, -1, 250, 0, 0},
	}
	for _, tc := range cases {
		rows, cols := GridDims(tc.w, tc.h, tc.s)
		if rows != tc.rows || cols != tc.cols {
			t.Errorf("GridDims(%v,%v,%v) = %d,%d want %d,%d", tc.w, tc.h, tc.s, rows, cols, tc.rows, tc.cols)
		}
		wantRows := int(math.Ceil(tc.h/tc.s)) + 1
		wantCols := int(math.Ceil(tc.w/tc.s)) + 1
		if tc.w > 0 && tc.h > 0 && (rows != wantRows || cols != wantCols) {
			t.Errorf("GridDims(%v,%v,%v) disagrees with ceil(n/S)+1", tc.w, tc.h, tc.s)
		}
	}
}

func TestBuildGridCoverage(t *testing.T) {
	cfg := DefaultConfig()
	w, h := 1000.0, 800.0
	nodes := BuildGrid(w, h, cfg, core.NewRNG(3))
	rows, cols := GridDims(w, h, cfg.Spacing)
	if len(nodes) != rows*cols {
		t.Fatalf("node count = %d, want %d", len(nodes), rows*cols)
	}
	s, j := cfg.Spacing, cfg.JitterFactor
	minX, maxX := -s*j/2, w+s+s*j/2
	minY, maxY := -s*j/2, h+s+s*j/2
	for i, n := range nodes {
		if n.RestX < minX || n.RestX > maxX || n.RestY < minY || n.RestY > maxY {
			t.Fatalf("node %d rest (%v,%v) outside jittered cover", i, n.RestX, n.RestY)
		}
		if n.X != n.RestX || n.Y != n.RestY {
			t.Fatalf("node %d not created at rest", i)
		}
		if n.Responsiveness < cfg.ResponsivenessMin || n.Responsiveness >= cfg.ResponsivenessMax {
			t.Fatalf("node %d responsiveness %v outside range", i, n.Responsiveness)
		}
	}
}

func TestBuildGridBrickOffsetWithoutJitter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JitterFactor = 0
	nodes := BuildGrid(500, 500, cfg, core.NewRNG(1))
	_, cols := GridDims(500, 500, cfg.Spacing)
	for i, n := range nodes {
		row, col := i/cols, i%cols
		wantX := float64(col) * cfg.Spacing
		if row%2 == 1 {
			wantX += cfg.Spacing / 2
		}
		if n.RestX != wantX || n.RestY != float64(row)*cfg.Spacing {
			t.Fatalf("node (%d,%d) at (%v,%v), want (%v,%v)", row, col, n.RestX, n.RestY, wantX, float64(row)*cfg.Spacing)
		}
	}
}

func TestBuildGridCountStableAcrossRuns(t *testing.T) {
	cfg := DefaultConfig()
	a := BuildGrid(1280, 720, cfg, nil)
	b := BuildGrid(1280, 720, cfg, nil)
	if len(a) != len(b) {
		t.Fatalf("unseeded grids differ in size: %d vs %d", len(a), len(b))
	}
}

func TestBuildGridEmptyViewport(t *testing.T) {
	if nodes := BuildGrid(0, 0, DefaultConfig(), core.NewRNG(1)); len(nodes) != 0 {
		t.Fatalf("expected no nodes, got %d", len(nodes))
	}
}

func TestBuildGridExtentAcrossSizes(t *testing.T) {
	cfg := DefaultConfig()
	s, j := cfg.Spacing, cfg.JitterFactor
	sizes := [][2]float64{{1, 1}, {100, 60}, {1000, 800}, {1100, 700}, {1280, 720}, {1920, 1080}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		nodes := BuildGrid(w, h, cfg, core.NewRNG(int64(w)))
		minX, maxX := -s*j/2, w+s+s/2+s*j/2
		minY, maxY := -s*j/2, h+s+s*j/2
		for i, n := range nodes {
			if n.RestX < minX || n.RestX > maxX || n.RestY < minY || n.RestY > maxY {
				t.Fatalf("%vx%v: node %d rest (%v,%v) outside [%v,%v]x[%v,%v]",
					w, h, i, n.RestX, n.RestY, minX, maxX, minY, maxY)
			}
		}
	}
}

func TestBuildGridOddRowShiftPassesCover(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JitterFactor = 0
	w := 1100.0
	nodes := BuildGrid(w, 500, cfg, core.NewRNG(1))
	maxX := math.Inf(-1)
	for _, n := range nodes {
		maxX = math.Max(maxX, n.RestX)
	}
	// cols = 6, so the last odd-row node sits at 5*250 + 125.
	if want := 1375.0; maxX != want {
		t.Fatalf("max x = %v, want %v", maxX, want)
	}
	if maxX <= w+cfg.Spacing {
		t.Fatalf("max x %v unexpectedly within W+S = %v", maxX, w+cfg.Spacing)
	}
}
