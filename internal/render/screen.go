//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen adapts an *ebiten.Image to the mesh drawing surface. Clipping uses
// sub-images, which share the parent's coordinate space.
type Screen struct {
	dst   *ebiten.Image
	scale float64
	clips []image.Rectangle

	vs []ebiten.Vertex
	is []uint16
}

var (
	whiteImage = ebiten.NewImage(3, 3)
	// whitePixel samples the center of whiteImage so filtering never reads
	// past its edge.
	whitePixel = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// NewScreen wraps dst. Logical coordinates are multiplied by scale.
func NewScreen(dst *ebiten.Image, scale float64) *Screen {
	s := &Screen{}
	s.Reset(dst, scale)
	return s
}

// Reset points the surface at a new target and drops any leftover clips.
func (s *Screen) Reset(dst *ebiten.Image, scale float64) {
	if !(scale > 0) {
		scale = 1
	}
	s.dst = dst
	s.scale = scale
	s.clips = s.clips[:0]
}

// Image returns the wrapped target.
func (s *Screen) Image() *ebiten.Image { return s.dst }

func (s *Screen) clip() image.Rectangle {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.dst.Bounds()
}

func (s *Screen) target() *ebiten.Image {
	if len(s.clips) == 0 {
		return s.dst
	}
	return s.dst.SubImage(s.clip()).(*ebiten.Image)
}

// ClearRect erases the rectangle to transparent within the current clip.
func (s *Screen) ClearRect(x, y, w, h float64) {
	rect := deviceRect(x, y, w, h, s.scale).Intersect(s.clip())
	if rect.Empty() {
		return
	}
	s.dst.SubImage(rect).(*ebiten.Image).Clear()
}

// FillCircle fills an antialiased disc.
func (s *Screen) FillCircle(cx, cy, r float64, c color.Color) {
	if !(r > 0) || s.clip().Empty() {
		return
	}
	k := s.scale
	vector.DrawFilledCircle(s.target(), float32(cx*k), float32(cy*k), float32(r*k), c, true)
}

// StrokeLine strokes an antialiased segment with round caps.
func (s *Screen) StrokeLine(x1, y1, x2, y2 float64, c color.Color, w float64) {
	if !(w > 0) || s.clip().Empty() {
		return
	}
	k := s.scale
	var path vector.Path
	path.MoveTo(float32(x1*k), float32(y1*k))
	path.LineTo(float32(x2*k), float32(y2*k))
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:   float32(w * k),
		LineCap: vector.LineCapRound,
	})

	cr, cg, cb, ca := c.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX, s.vs[i].SrcY = 1, 1
		s.vs[i].ColorR = float32(cr) / 0xffff
		s.vs[i].ColorG = float32(cg) / 0xffff
		s.vs[i].ColorB = float32(cb) / 0xffff
		s.vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	s.target().DrawTriangles(s.vs, s.is, whitePixel, op)
}

// PushClipRect narrows drawing to the intersection with the given rectangle.
func (s *Screen) PushClipRect(x, y, w, h float64) {
	s.clips = append(s.clips, deviceRect(x, y, w, h, s.scale).Intersect(s.clip()))
}

// PopClip restores the previous clip. Extra calls are ignored.
func (s *Screen) PopClip() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}
