package main

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"netmesh/internal/app"
	"netmesh/internal/config"
	"netmesh/internal/core"
	"netmesh/internal/mesh"
	"netmesh/internal/page"
	"netmesh/internal/render"

	"github.com/spf13/cobra"
)

type snapshotOptions struct {
	Frames  int
	Scale   float64
	Scroll  float64
	Pointer *core.Vec2
	Region  *mesh.Region
}

func newSnapshotCmd() *cobra.Command {
	flags := app.NewConfig()
	var (
		out     string
		frames  int
		scale   float64
		scroll  float64
		pointer string
		region  string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render frames headlessly and write the last one as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd.Flags())
			if err != nil {
				return err
			}
			opts := snapshotOptions{Frames: frames, Scale: scale, Scroll: scroll}
			if pointer != "" {
				x, y, err := parsePair(pointer)
				if err != nil {
					return fmt.Errorf("--pointer: %w", err)
				}
				opts.Pointer = &core.Vec2{X: x, Y: y}
			}
			if region != "" {
				top, bottom, err := parsePair(region)
				if err != nil {
					return fmt.Errorf("--region: %w", err)
				}
				opts.Region = &mesh.Region{Top: top, Bottom: bottom}
			}

			img, stats, err := renderSnapshot(cfg, flags.RNG(), opts)
			if err != nil {
				return err
			}
			if err := writePNG(out, img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d nodes, %d+%d links)\n",
				out, img.Bounds().Dx(), img.Bounds().Dy(),
				stats.Base.Nodes, stats.Base.Links, stats.Accent.Links)
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "netmesh.png", "output PNG path")
	cmd.Flags().IntVar(&frames, "frames", 1, "frames to simulate before capturing")
	cmd.Flags().Float64Var(&scale, "scale", 1, "device pixel ratio")
	cmd.Flags().Float64Var(&scroll, "scroll", 0, "page scroll offset")
	cmd.Flags().StringVar(&pointer, "pointer", "", "pointer position as x,y")
	cmd.Flags().StringVar(&region, "region", "", "highlight band as top,bottom (overrides the page section)")
	return cmd
}

// renderSnapshot runs the driver for opts.Frames frames on a raster surface
// and composites the result over the page backdrop.
func renderSnapshot(cfg *config.Config, rng *core.RNG, opts snapshotOptions) (*image.RGBA, mesh.FrameStats, error) {
	if opts.Frames < 1 {
		opts.Frames = 1
	}
	view := mesh.Viewport{
		Width:       float64(cfg.Window.Width),
		Height:      float64(cfg.Window.Height),
		DeviceScale: opts.Scale,
	}

	pageCfg := cfg.Page
	pageCfg.ScrollDuration = 0
	pg := page.New(pageCfg)
	pg.SetViewportHeight(view.Height)
	pg.ScrollTo(opts.Scroll)

	var provider mesh.RegionProvider = pg
	if opts.Region != nil {
		provider = mesh.StaticRegion(*opts.Region)
	}

	driver, err := mesh.NewDriver(cfg.Mesh, provider, rng)
	if err != nil {
		return nil, mesh.FrameStats{}, err
	}
	driver.Resize(view)
	if opts.Pointer != nil {
		driver.PointerMoved(opts.Pointer.X, opts.Pointer.Y)
	}

	px := view.Pixels()
	raster := render.NewRaster(px, view.Scale())
	var stats mesh.FrameStats
	for i := 0; i < opts.Frames; i++ {
		stats = driver.Frame(raster)
	}

	bg, err := core.ParseHexColor(cfg.Page.Background)
	if err != nil {
		return nil, stats, fmt.Errorf("page background: %w", err)
	}
	sec, err := core.ParseHexColor(cfg.Page.SectionColor)
	if err != nil {
		return nil, stats, fmt.Errorf("page section color: %w", err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, px.W, px.H))
	render.FillBand(dst, 0, px.H, bg)
	if band := stats.Region; !band.Empty() {
		s := view.Scale()
		render.FillBand(dst, int(math.Floor(band.Top*s)), int(math.Ceil(band.Bottom*s)), sec)
	}
	render.Composite(dst, raster.Image())
	return dst, stats, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// parsePair parses "a,b" into two floats.
func parsePair(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want two comma separated numbers, got %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
