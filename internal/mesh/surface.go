package mesh

import "image/color"

// Surface is the immediate-mode drawing target. Coordinates are logical
// pixels. Clip rectangles nest by intersection and PopClip on an empty stack
// does nothing.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64)
	PushClipRect(x, y, w, h float64)
	PopClip()
}
