package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"netmesh/internal/core"

	"golang.org/x/image/vector"
)

// circleKappa places cubic control points so four segments approximate a
// quarter circle each.
const circleKappa = 0.5522847498

// Raster is a software Surface backed by an *image.RGBA. Logical coordinates
// are multiplied by the device scale before rasterization, and every draw is
// confined to the innermost clip rectangle.
type Raster struct {
	img   *image.RGBA
	scale float64
	clips []image.Rectangle
	z     *vector.Rasterizer
}

// NewRaster allocates a transparent surface of the given device size.
func NewRaster(size core.Size, scale float64) *Raster {
	if size.W < 0 {
		size.W = 0
	}
	if size.H < 0 {
		size.H = 0
	}
	if !(scale > 0) {
		scale = 1
	}
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, size.W, size.H)),
		scale: scale,
		z:     vector.NewRasterizer(0, 0),
	}
}

// Image exposes the backing pixels.
func (r *Raster) Image() *image.RGBA { return r.img }

// Scale returns the device pixel ratio.
func (r *Raster) Scale() float64 { return r.scale }

// ClipDepth reports how many clip rectangles are active.
func (r *Raster) ClipDepth() int { return len(r.clips) }

func (r *Raster) clip() image.Rectangle {
	if n := len(r.clips); n > 0 {
		return r.clips[n-1]
	}
	return r.img.Bounds()
}

func (r *Raster) device(x, y, w, h float64) image.Rectangle {
	return deviceRect(x, y, w, h, r.scale)
}

// deviceRect converts a logical rectangle to the smallest covering pixel
// rectangle at the given scale.
func deviceRect(x, y, w, h, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x*scale)), int(math.Floor(y*scale)),
		int(math.Ceil((x+w)*scale)), int(math.Ceil((y+h)*scale)),
	).Canon()
}

// ClearRect erases the rectangle to transparent within the current clip.
func (r *Raster) ClearRect(x, y, w, h float64) {
	rect := r.device(x, y, w, h).Intersect(r.clip())
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, image.Transparent, image.Point{}, draw.Src)
}

// FillCircle fills a disc of logical radius rad.
func (r *Raster) FillCircle(cx, cy, rad float64, c color.Color) {
	if !(rad > 0) {
		return
	}
	area := r.device(cx-rad, cy-rad, 2*rad, 2*rad).Inset(-1)
	r.fill(area, c, func(z *vector.Rasterizer, ox, oy float32) {
		s := r.scale
		x, y, k := float32(cx*s)-ox, float32(cy*s)-oy, float32(rad*s)
		q := k * circleKappa
		z.MoveTo(x+k, y)
		z.CubeTo(x+k, y+q, x+q, y+k, x, y+k)
		z.CubeTo(x-q, y+k, x-k, y+q, x-k, y)
		z.CubeTo(x-k, y-q, x-q, y-k, x, y-k)
		z.CubeTo(x+q, y-k, x+k, y-q, x+k, y)
		z.ClosePath()
	})
}

// StrokeLine strokes a segment of logical width w with round caps.
func (r *Raster) StrokeLine(x1, y1, x2, y2 float64, c color.Color, w float64) {
	if !(w > 0) {
		return
	}
	s := r.scale
	dx, dy := (x2-x1)*s, (y2-y1)*s
	length := math.Hypot(dx, dy)
	if length == 0 {
		r.FillCircle(x1, y1, w/2, c)
		return
	}
	half := w * s / 2
	area := image.Rect(
		int(math.Floor(math.Min(x1*s, x2*s)-half)), int(math.Floor(math.Min(y1*s, y2*s)-half)),
		int(math.Ceil(math.Max(x1*s, x2*s)+half)), int(math.Ceil(math.Max(y1*s, y2*s)+half)),
	).Inset(-1)
	r.fill(area, c, func(z *vector.Rasterizer, ox, oy float32) {
		ax, ay := float32(x1*s)-ox, float32(y1*s)-oy
		bx, by := float32(x2*s)-ox, float32(y2*s)-oy
		// q runs along the segment and n across it, both of length half.
		h := float32(half)
		ux, uy := float32(dx/length), float32(dy/length)
		qx, qy := ux*h, uy*h
		nx, ny := -qy, qx
		k := float32(circleKappa)

		// One closed outline: side, cap around b, side, cap around a.
		z.MoveTo(ax+nx, ay+ny)
		z.LineTo(bx+nx, by+ny)
		z.CubeTo(bx+nx+k*qx, by+ny+k*qy, bx+qx+k*nx, by+qy+k*ny, bx+qx, by+qy)
		z.CubeTo(bx+qx-k*nx, by+qy-k*ny, bx-nx+k*qx, by-ny+k*qy, bx-nx, by-ny)
		z.LineTo(ax-nx, ay-ny)
		z.CubeTo(ax-nx-k*qx, ay-ny-k*qy, ax-qx-k*nx, ay-qy-k*ny, ax-qx, ay-qy)
		z.CubeTo(ax-qx+k*nx, ay-qy+k*ny, ax+nx-k*qx, ay+ny-k*qy, ax+nx, ay+ny)
		z.ClosePath()
	})
}

// fill rasterizes the path produced by build into the part of area that lies
// inside the current clip. Path coordinates are relative to that part's
// origin, which is passed to build.
func (r *Raster) fill(area image.Rectangle, c color.Color, build func(z *vector.Rasterizer, ox, oy float32)) {
	rect := area.Intersect(r.clip())
	if rect.Empty() {
		return
	}
	r.z.Reset(rect.Dx(), rect.Dy())
	build(r.z, float32(rect.Min.X), float32(rect.Min.Y))
	r.z.Draw(r.img, rect, image.NewUniform(c), image.Point{})
}

// PushClipRect narrows drawing to the intersection of the current clip and
// the given logical rectangle.
func (r *Raster) PushClipRect(x, y, w, h float64) {
	r.clips = append(r.clips, r.device(x, y, w, h).Intersect(r.clip()))
}

// PopClip restores the previous clip. Extra calls are ignored.
func (r *Raster) PopClip() {
	if n := len(r.clips); n > 0 {
		r.clips = r.clips[:n-1]
	}
}
