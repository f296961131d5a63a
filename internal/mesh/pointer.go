package mesh

import "netmesh/internal/core"

// Pointer is the last known pointer position. It is written by input
// handlers and read by every node update of the next frame.
type Pointer struct {
	X, Y   float64
	Valid  bool
	Radius float64
}

// Move records a new pointer position. Non-finite coordinates unset the
// pointer instead.
func (p *Pointer) Move(x, y float64) {
	if !(core.Vec2{X: x, Y: y}).Finite() {
		p.Clear()
		return
	}
	p.X, p.Y, p.Valid = x, y, true
}

// Clear forgets the pointer position; no node is repelled until the next Move.
func (p *Pointer) Clear() {
	p.X, p.Y, p.Valid = 0, 0, false
}

// Pos returns the pointer position and whether it is set.
func (p Pointer) Pos() (core.Vec2, bool) {
	return core.Vec2{X: p.X, Y: p.Y}, p.Valid
}
