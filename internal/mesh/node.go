package mesh

import "math"

// Node is one mesh vertex. RestX/RestY never change after creation; X/Y are
// advanced once per frame by Step.
type Node struct {
	RestX, RestY   float64
	X, Y           float64
	Responsiveness float64
}

// NewNode returns a node resting at (x, y).
func NewNode(x, y, responsiveness float64) Node {
	return Node{RestX: x, RestY: y, X: x, Y: y, Responsiveness: responsiveness}
}

// Offset returns the current displacement from the rest position.
func (n Node) Offset() (dx, dy float64) {
	return n.X - n.RestX, n.Y - n.RestY
}

// UpdateNode advances a single node by one frame and returns the new state.
//
// Inside the pointer's influence radius the node is pushed away from the
// pointer by ((R-d)/R)*Responsiveness. Outside it, or with no pointer, each
// axis moves 1/relaxDivisor of the way back to rest. A pointer sitting exactly
// on the node has no defined direction and leaves the node where it is.
func UpdateNode(n Node, p Pointer, relaxDivisor float64) Node {
	if p.Valid {
		dx := p.X - n.X
		dy := p.Y - n.Y
		d := math.Hypot(dx, dy)
		if d == 0 {
			return n
		}
		if d < p.Radius {
			force := (p.Radius - d) / p.Radius
			n.X -= dx / d * force * n.Responsiveness
			n.Y -= dy / d * force * n.Responsiveness
			return n
		}
	}
	if n.X != n.RestX {
		n.X -= (n.X - n.RestX) / relaxDivisor
	}
	if n.Y != n.RestY {
		n.Y -= (n.Y - n.RestY) / relaxDivisor
	}
	return n
}

// Step advances every node one frame in place.
func Step(nodes []Node, p Pointer, cfg Config) {
	for i := range nodes {
		nodes[i] = UpdateNode(nodes[i], p, cfg.RelaxDivisor)
	}
}
