package render

import (
	"image"
	"image/color"
	"testing"

	"netmesh/internal/core"
	"netmesh/internal/mesh"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestFillCircleAndStrokeLine(t *testing.T) {
	r := NewRaster(core.Size{W: 100, H: 100}, 1)
	r.FillCircle(50, 50, 10, red)
	if got := r.Image().RGBAAt(50, 50); got != red {
		t.Fatalf("circle center = %v, want %v", got, red)
	}
	if got := r.Image().RGBAAt(50, 65); got.A != 0 {
		t.Fatalf("pixel outside the disc painted: %v", got)
	}
	r.StrokeLine(0, 10, 100, 10, blue, 4)
	if got := r.Image().RGBAAt(30, 10); got != blue {
		t.Fatalf("line pixel = %v, want %v", got, blue)
	}
	if got := r.Image().RGBAAt(30, 20); got.A != 0 {
		t.Fatalf("pixel away from the line painted: %v", got)
	}
}

func TestClipConfinesDrawing(t *testing.T) {
	r := NewRaster(core.Size{W: 200, H: 200}, 1)
	r.PushClipRect(0, 50, 200, 100)
	// Strokes and discs that cross the band boundaries.
	r.StrokeLine(100, 0, 100, 200, red, 6)
	r.FillCircle(20, 50, 15, red)
	r.FillCircle(180, 150, 15, red)

	band := image.Rect(0, 50, 200, 150)
	if CountOpaque(r.Image(), band) == 0 {
		t.Fatal("nothing drawn inside the clip band")
	}
	above := image.Rect(0, 0, 200, 50)
	below := image.Rect(0, 150, 200, 200)
	if n := CountOpaque(r.Image(), above) + CountOpaque(r.Image(), below); n != 0 {
		t.Fatalf("%d pixels leaked outside the clip band", n)
	}

	r.PopClip()
	if r.ClipDepth() != 0 {
		t.Fatalf("clip depth = %d after pop", r.ClipDepth())
	}
	r.StrokeLine(0, 20, 200, 20, blue, 4)
	if CountOpaque(r.Image(), above) == 0 {
		t.Fatal("drawing after PopClip is still clipped")
	}
	r.PopClip()
}

func TestClipsNestByIntersection(t *testing.T) {
	r := NewRaster(core.Size{W: 100, H: 100}, 1)
	r.PushClipRect(0, 0, 60, 100)
	r.PushClipRect(40, 0, 60, 100)
	r.StrokeLine(0, 50, 100, 50, red, 10)
	if n := CountOpaque(r.Image(), image.Rect(0, 0, 40, 100)); n != 0 {
		t.Fatalf("%d pixels left of the inner clip", n)
	}
	if n := CountOpaque(r.Image(), image.Rect(60, 0, 100, 100)); n != 0 {
		t.Fatalf("%d pixels right of the outer clip", n)
	}
	if CountOpaque(r.Image(), image.Rect(40, 0, 60, 100)) == 0 {
		t.Fatal("nothing drawn in the intersection")
	}
}

func TestClearRectRespectsClip(t *testing.T) {
	r := NewRaster(core.Size{W: 50, H: 50}, 1)
	FillBand(r.Image(), 0, 50, red)
	r.PushClipRect(0, 0, 50, 10)
	r.ClearRect(0, 0, 50, 50)
	r.PopClip()
	if n := CountOpaque(r.Image(), image.Rect(0, 0, 50, 10)); n != 0 {
		t.Fatalf("%d pixels survived the clear", n)
	}
	if n := CountOpaque(r.Image(), image.Rect(0, 10, 50, 50)); n != 50*40 {
		t.Fatalf("clear escaped the clip: %d opaque pixels remain, want %d", n, 50*40)
	}
}

func TestDeviceScale(t *testing.T) {
	r := NewRaster(core.Size{W: 200, H: 200}, 2)
	r.PushClipRect(0, 25, 100, 25)
	r.StrokeLine(50, 0, 50, 100, red, 2)
	r.PopClip()
	if n := CountOpaque(r.Image(), image.Rect(0, 0, 200, 50)); n != 0 {
		t.Fatalf("%d pixels above the scaled band", n)
	}
	if n := CountOpaque(r.Image(), image.Rect(0, 100, 200, 200)); n != 0 {
		t.Fatalf("%d pixels below the scaled band", n)
	}
	if got := r.Image().RGBAAt(100, 75); got != red {
		t.Fatalf("scaled line pixel = %v, want %v", got, red)
	}
}

func TestDriverFrameOnRaster(t *testing.T) {
	cfg := mesh.DefaultConfig()
	region := mesh.StaticRegion{Top: 300, Bottom: 500}
	d, err := mesh.NewDriver(cfg, region, core.NewRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	v := mesh.Viewport{Width: 1000, Height: 800, DeviceScale: 1}
	d.Resize(v)
	r := NewRaster(v.Pixels(), v.Scale())
	d.Frame(r)
	if r.ClipDepth() != 0 {
		t.Fatal("frame left a clip active")
	}

	base, accent := d.Colors()
	inside := Dominant(r.Image(), image.Rect(0, 300, 1000, 500), base, accent)
	if inside[0] != 0 || inside[1] == 0 {
		t.Fatalf("band pixels base/accent = %v, want only accent", inside)
	}
	top := Dominant(r.Image(), image.Rect(0, 0, 1000, 300), base, accent)
	bottom := Dominant(r.Image(), image.Rect(0, 500, 1000, 800), base, accent)
	if top[1] != 0 || bottom[1] != 0 {
		t.Fatalf("accent pixels outside the band: top=%v bottom=%v", top, bottom)
	}
	if top[0] == 0 || bottom[0] == 0 {
		t.Fatal("base layer missing outside the band")
	}
}

func TestDriverFrameWithoutRegion(t *testing.T) {
	d, err := mesh.NewDriver(mesh.DefaultConfig(), nil, core.NewRNG(2))
	if err != nil {
		t.Fatal(err)
	}
	v := mesh.Viewport{Width: 1000, Height: 800, DeviceScale: 1}
	d.Resize(v)
	r := NewRaster(v.Pixels(), 1)
	d.Frame(r)
	base, accent := d.Colors()
	counts := Dominant(r.Image(), r.Image().Bounds(), base, accent)
	if counts[0] == 0 || counts[1] != 0 {
		t.Fatalf("base/accent = %v, want base only", counts)
	}
}

func TestCompositeKeepsBackdropUnderTransparentPixels(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	FillBand(dst, 0, 10, blue)
	layer := image.NewRGBA(dst.Bounds())
	layer.SetRGBA(3, 4, red)
	Composite(dst, layer)
	if got := dst.RGBAAt(3, 4); got != red {
		t.Fatalf("layer pixel = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(0, 0); got != blue {
		t.Fatalf("backdrop pixel = %v, want %v", got, blue)
	}
}

func TestStrokeLineRoundCaps(t *testing.T) {
	r := NewRaster(core.Size{W: 100, H: 100}, 1)
	r.StrokeLine(20, 50, 80, 50, red, 10)
	img := r.Image()
	// Within half the width past each end the caps are painted.
	for _, p := range []image.Point{{16, 50}, {83, 50}, {18, 47}} {
		if img.RGBAAt(p.X, p.Y).A == 0 {
			t.Errorf("pixel %v inside a cap is empty", p)
		}
	}
	// Beyond the cap radius, and at the corners a square cap would fill.
	for _, p := range []image.Point{{13, 50}, {86, 50}, {15, 45}, {84, 45}, {84, 54}} {
		if got := img.RGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("pixel %v outside the caps painted: %v", p, got)
		}
	}
}

func TestStrokeLineZeroLengthDrawsDot(t *testing.T) {
	r := NewRaster(core.Size{W: 20, H: 20}, 1)
	r.StrokeLine(10, 10, 10, 10, red, 6)
	if r.Image().RGBAAt(10, 10).A == 0 {
		t.Fatal("zero-length round-capped line left no dot")
	}
}
