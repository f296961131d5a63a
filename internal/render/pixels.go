package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Composite draws layer over dst with source-over blending.
func Composite(dst draw.Image, layer *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), layer, layer.Bounds().Min, draw.Over)
}

// FillBand paints rows [top, bottom) of dst with c, clamped to dst.
func FillBand(dst draw.Image, top, bottom int, c color.Color) {
	b := dst.Bounds()
	rect := image.Rect(b.Min.X, top, b.Max.X, bottom).Intersect(b)
	if rect.Empty() {
		return
	}
	draw.Draw(dst, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// CountOpaque returns the number of pixels in rect whose alpha is non-zero.
func CountOpaque(img *image.RGBA, rect image.Rectangle) int {
	rect = rect.Intersect(img.Bounds())
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

// Dominant reports which of the candidate colors the opaque pixels of rect
// are closest to, as counts per candidate index.
func Dominant(img *image.RGBA, rect image.Rectangle, candidates ...color.RGBA) []int {
	counts := make([]int, len(candidates))
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			px := img.RGBAAt(x, y)
			if px.A < 0x80 {
				continue
			}
			best, bestDist := -1, 1<<30
			for i, c := range candidates {
				if d := colorDist(unpremultiply(px), c); d < bestDist {
					best, bestDist = i, d
				}
			}
			if best >= 0 {
				counts[best]++
			}
		}
	}
	return counts
}

func unpremultiply(c color.RGBA) color.RGBA {
	if c.A == 0 || c.A == 0xff {
		return c
	}
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * 0xff / a),
		G: uint8(uint32(c.G) * 0xff / a),
		B: uint8(uint32(c.B) * 0xff / a),
		A: c.A,
	}
}

func colorDist(a, b color.RGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
