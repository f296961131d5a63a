//go:build ebiten

package app

import (
	"fmt"
	"image/color"

	"netmesh/internal/config"
	"netmesh/internal/core"
	"netmesh/internal/mesh"
	"netmesh/internal/page"
	"netmesh/internal/render"
	"netmesh/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudWidth = 240

// Game adapts the mesh driver to the ebiten.Game interface. The mesh is drawn
// into a transparent layer that is composited over the page backdrop, the
// way a canvas sits over a web page.
type Game struct {
	cfg     *config.Config
	driver  *mesh.Driver
	page    *page.Page
	surface *render.Screen
	layer   *ebiten.Image
	hud     *ui.HUD
	overlay *ui.Overlay

	background color.RGBA
	section    color.RGBA

	view    mesh.Viewport
	showHUD bool
}

// New constructs a Game for the provided configuration.
func New(cfg *config.Config, rng *core.RNG) (*Game, error) {
	pg := page.New(cfg.Page)
	driver, err := mesh.NewDriver(cfg.Mesh, pg, rng)
	if err != nil {
		return nil, err
	}
	bg, err := core.ParseHexColor(cfg.Page.Background)
	if err != nil {
		return nil, fmt.Errorf("page background: %w", err)
	}
	sec, err := core.ParseHexColor(cfg.Page.SectionColor)
	if err != nil {
		return nil, fmt.Errorf("page section color: %w", err)
	}
	return &Game{
		cfg:        cfg,
		driver:     driver,
		page:       pg,
		hud:        ui.NewHUD(driver, hudWidth),
		overlay:    ui.NewOverlay(driver, pg),
		background: bg,
		section:    sec,
	}, nil
}

// Driver exposes the mesh driver.
func (g *Game) Driver() *mesh.Driver { return g.driver }

// Update handles input and advances the page scroll animation. Input only
// writes pointer and scroll state; the next Draw observes it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Rebuild()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	g.handleScroll()
	g.handlePointer()

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = config.DefaultTPS
	}
	g.page.Update(1 / float64(tps))

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.showHUD {
		g.hud.Update(g.hudOffset())
	}
	return nil
}

func (g *Game) handleScroll() {
	_, wy := ebiten.Wheel()
	g.page.Wheel(wy)
	step := g.cfg.Page.WheelStep
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.page.ScrollBy(step)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.page.ScrollBy(-step)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.page.ScrollBy(g.view.Height)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.page.ScrollBy(-g.view.Height)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.page.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.page.ScrollTo(g.page.MaxScroll())
	}
}

func (g *Game) handlePointer() {
	cx, cy := ebiten.CursorPosition()
	s := g.view.Scale()
	x, y := float64(cx)/s, float64(cy)/s
	if x < 0 || y < 0 || x >= g.view.Width || y >= g.view.Height {
		g.driver.PointerLeft()
		return
	}
	if g.showHUD && cx >= g.hudOffset() {
		g.driver.PointerLeft()
		return
	}
	g.driver.PointerMoved(x, y)
}

func (g *Game) hudOffset() int {
	return g.view.Pixels().W - hudWidth
}

// Draw renders the page backdrop, the mesh layer and the optional panels.
func (g *Game) Draw(screen *ebiten.Image) {
	px := g.view.Pixels()
	if px.Empty() {
		return
	}
	if g.layer == nil || g.layer.Bounds().Dx() != px.W || g.layer.Bounds().Dy() != px.H {
		if g.layer != nil {
			g.layer.Deallocate()
		}
		g.layer = ebiten.NewImage(px.W, px.H)
		g.surface = render.NewScreen(g.layer, g.view.Scale())
	}
	g.surface.Reset(g.layer, g.view.Scale())
	g.driver.Frame(g.surface)

	screen.Fill(g.background)
	if band := g.page.RegionBounds(); !band.Empty() {
		s := g.view.Scale()
		vector.DrawFilledRect(screen, 0, float32(band.Top*s), float32(px.W), float32(band.Height()*s), g.section, false)
	}
	screen.DrawImage(g.layer, nil)

	if g.overlay != nil {
		g.overlay.Draw(screen, g.view.Scale())
	}
	if g.showHUD {
		g.hud.Draw(screen, g.hudOffset(), px.H)
	}
}

// Layout sizes the screen in device pixels so the mesh is drawn at native
// sharpness, and rebuilds the grid whenever the window size or scale changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	v := mesh.Viewport{
		Width:       float64(outsideWidth),
		Height:      float64(outsideHeight),
		DeviceScale: ebiten.Monitor().DeviceScaleFactor(),
	}
	if g.driver.Resize(v) {
		g.view = v
		g.page.SetViewportHeight(v.Height)
	}
	px := v.Pixels()
	return px.W, px.H
}
