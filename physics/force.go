package physics

import (
	"github.com/lixenwraith/vi-cloth/vmath"
)

// ApplyGravity adds weight to every free node
func ApplyGravity(nodes []Node, g float64) {
	if g == 0 {
		return
	}
	for i := range nodes {
		nodes[i].ApplyGravity(g)
	}
}

// ApplyDrag adds velocity-proportional drag to every free node
func ApplyDrag(nodes []Node, k float64) {
	if k == 0 {
		return
	}
	for i := range nodes {
		nodes[i].ApplyDrag(k)
	}
}

// PointerField describes an interactive pull: nodes within Radius of Pos
// receive Delta*Strength as force for one step
type PointerField struct {
	Pos      vmath.Vec2
	Delta    vmath.Vec2 // Pointer displacement since the previous sample
	Radius   float64
	Strength float64
}

// ApplyPointerForce applies the field to free nodes inside the capture radius
// Returns the number of nodes captured
func ApplyPointerForce(nodes []Node, field PointerField) int {
	if field.Radius <= 0 {
		return 0
	}

	radiusSq := field.Radius * field.Radius
	impulse := vmath.V2Scale(field.Delta, field.Strength)

	captured := 0
	for i := range nodes {
		n := &nodes[i]
		if n.Fixed {
			continue
		}
		if vmath.V2DistSq(n.Pos, field.Pos) > radiusSq {
			continue
		}
		n.ApplyImpulse(impulse)
		captured++
	}
	return captured
}

// Nearest returns the index of the node closest to p within radius, or -1
// Ties resolve to the lowest index
func Nearest(nodes []Node, p vmath.Vec2, radius float64) int {
	best := -1
	bestSq := radius * radius
	for i := range nodes {
		d := vmath.V2DistSq(nodes[i].Pos, p)
		if d <= bestSq && (best < 0 || d < bestSq) {
			best = i
			bestSq = d
		}
	}
	return best
}
