package pattern

import (
	"math"

	"github.com/lixenwraith/vi-cloth/vmath"
)

// Translate shifts all node positions by d, in place
func (t *Topology) Translate(d vmath.Vec2) {
	for i := range t.Nodes {
		n := &t.Nodes[i]
		n.Pos = vmath.V2Add(n.Pos, d)
		n.PrevPos = vmath.V2Add(n.PrevPos, d)
	}
}

// Bounds returns the axis-aligned bounding box of node positions
// Empty topology returns zero vectors
func (t *Topology) Bounds() (lo, hi vmath.Vec2) {
	if len(t.Nodes) == 0 {
		return vmath.Vec2{}, vmath.Vec2{}
	}

	lo = vmath.V2(math.Inf(1), math.Inf(1))
	hi = vmath.V2(math.Inf(-1), math.Inf(-1))
	for i := range t.Nodes {
		p := t.Nodes[i].Pos
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// CenterOn translates the topology so its bounding box center lands on c
func (t *Topology) CenterOn(c vmath.Vec2) {
	lo, hi := t.Bounds()
	mid := vmath.V2Scale(vmath.V2Add(lo, hi), 0.5)
	t.Translate(vmath.V2Sub(c, mid))
}
