//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"netmesh/internal/mesh"
	"netmesh/internal/page"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the mesh.
type Overlay struct {
	driver *mesh.Driver
	page   *page.Page

	visible     bool
	showRadius  bool
	showBand    bool
	showOffsets bool
	showStats   bool
}

// NewOverlay constructs a hidden overlay; O shows it.
func NewOverlay(driver *mesh.Driver, pg *page.Page) *Overlay {
	return &Overlay{
		driver:     driver,
		page:       pg,
		showRadius: true,
		showBand:   true,
		showStats:  true,
	}
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.visible = !o.visible
	}
	if !o.visible {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRadius = !o.showRadius
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showBand = !o.showBand
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showOffsets = !o.showOffsets
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showStats = !o.showStats
	}
}

// Draw renders the overlay onto screen. scale converts logical coordinates to
// device pixels.
func (o *Overlay) Draw(screen *ebiten.Image, scale float64) {
	if !o.visible || o.driver == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	if o.showOffsets {
		o.drawOffsets(screen, scale)
	}
	if o.showBand {
		o.drawBand(screen, scale)
	}
	if o.showRadius {
		o.drawRadius(screen, scale)
	}
	if o.showStats {
		ebitenutil.DebugPrint(screen, o.statsLine())
	}
}

func (o *Overlay) drawRadius(screen *ebiten.Image, scale float64) {
	p := o.driver.Pointer()
	pos, ok := p.Pos()
	if !ok || p.Radius <= 0 {
		return
	}
	cx := float32(pos.X * scale)
	cy := float32(pos.Y * scale)
	vector.StrokeCircle(screen, cx, cy, float32(p.Radius*scale), float32(scale), color.RGBA{R: 220, G: 80, B: 60, A: 200}, true)
	vector.DrawFilledCircle(screen, cx, cy, float32(2*scale), color.RGBA{R: 220, G: 80, B: 60, A: 255}, true)
}

func (o *Overlay) drawBand(screen *ebiten.Image, scale float64) {
	band := o.driver.LastFrame().Region
	if band.Empty() {
		return
	}
	w := o.driver.Viewport().Width
	vector.StrokeRect(screen, 1, float32(band.Top*scale), float32(w*scale)-2, float32(band.Height()*scale),
		float32(scale), color.RGBA{R: 240, G: 200, B: 60, A: 220}, false)
}

// drawOffsets draws a tail from each displaced node back to its rest point,
// brighter for larger displacement.
func (o *Overlay) drawOffsets(screen *ebiten.Image, scale float64) {
	const minVisible = 0.5
	spacing := o.driver.Config().Spacing
	for _, n := range o.driver.Nodes() {
		dx, dy := n.Offset()
		d := math.Hypot(dx, dy)
		if d < minVisible {
			continue
		}
		t := clamp01(d / (spacing * 0.25))
		col := color.RGBA{R: uint8(80 + 175*t), G: 160, B: uint8(255 - 175*t), A: 220}
		vector.StrokeLine(screen,
			float32(n.RestX*scale), float32(n.RestY*scale),
			float32(n.X*scale), float32(n.Y*scale),
			float32(scale), col, true)
	}
}

func (o *Overlay) statsLine() string {
	last := o.driver.LastFrame()
	line := fmt.Sprintf("FPS %.0f  nodes %d  links %d+%d  culled %d  gen %d",
		ebiten.ActualFPS(), last.Base.Nodes, last.Base.Links, last.Accent.Links,
		last.Base.Culled, o.driver.Generation())
	if o.page != nil {
		line += fmt.Sprintf("\nscroll %.0f/%.0f", o.page.Scroll(), o.page.MaxScroll())
		if !last.Region.Empty() {
			line += fmt.Sprintf("  band %.0f..%.0f", last.Region.Top, last.Region.Bottom)
		}
	}
	return line + "\n1 radius  2 band  3 offsets  4 stats  O hide"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
