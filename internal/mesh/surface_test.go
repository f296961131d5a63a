package mesh

import "image/color"

type op struct {
	kind  string
	x, y  float64
	w, h  float64
	color color.Color
	depth int
}

// recorder is a Surface that logs every call in order.
type recorder struct {
	ops   []op
	depth int
	// panicOnFill makes FillCircle panic while a clip is active.
	panicOnFill bool
}

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "clear", x: x, y: y, w: w, h: h, depth: r.depth})
}

func (r *recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	if r.panicOnFill && r.depth > 0 {
		panic("fill failed")
	}
	r.ops = append(r.ops, op{kind: "circle", x: cx, y: cy, w: rad, color: c, depth: r.depth})
}

func (r *recorder) StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64) {
	r.ops = append(r.ops, op{kind: "line", x: x1, y: y1, w: x2, h: y2, color: c, depth: r.depth})
}

func (r *recorder) PushClipRect(x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "push", x: x, y: y, w: w, h: h, depth: r.depth})
	r.depth++
}

func (r *recorder) PopClip() {
	if r.depth > 0 {
		r.depth--
	}
	r.ops = append(r.ops, op{kind: "pop", depth: r.depth})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}
