package engine

import (
	"math"

	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// NodeView is the read-only per-node state exposed to hosts
type NodeView struct {
	Pos   vmath.Vec2
	Fixed bool
}

// LinkView is the read-only per-link state exposed to hosts
type LinkView struct {
	A, B   int
	Strain float64 // Current length over rest length, 0 for zero rest length
}

// Snapshot is a reusable buffer filled by Simulation.Snapshot
type Snapshot struct {
	Tick  uint64
	Nodes []NodeView
	Links []LinkView
}

// Snapshot copies the current state into dst, reusing its slices
func (s *Simulation) Snapshot(dst *Snapshot) {
	dst.Tick = s.tick

	dst.Nodes = dst.Nodes[:0]
	for i := range s.nodes {
		dst.Nodes = append(dst.Nodes, NodeView{Pos: s.nodes[i].Pos, Fixed: s.nodes[i].Fixed})
	}

	dst.Links = dst.Links[:0]
	for i := range s.links {
		l := &s.links[i]
		strain := 0.0
		if l.RestLength > 0 {
			strain = l.Length(s.nodes) / l.RestLength
		}
		dst.Links = append(dst.Links, LinkView{A: l.A, B: l.B, Strain: strain})
	}
}

// Segment returns the endpoint positions of link view i
func (sn *Snapshot) Segment(i int) (vmath.Vec2, vmath.Vec2) {
	l := sn.Links[i]
	return sn.Nodes[l.A].Pos, sn.Nodes[l.B].Pos
}

// Bounds returns the bounding box of node positions, skipping nodes parked at
// parameter.OrphanPark. ok is false when no node remains
func (sn *Snapshot) Bounds() (lo, hi vmath.Vec2, ok bool) {
	park := vmath.V2(parameter.OrphanPark[0], parameter.OrphanPark[1])

	lo = vmath.V2(math.Inf(1), math.Inf(1))
	hi = vmath.V2(math.Inf(-1), math.Inf(-1))
	for _, n := range sn.Nodes {
		if n.Pos == park {
			continue
		}
		lo = vmath.V2(min(lo.X, n.Pos.X), min(lo.Y, n.Pos.Y))
		hi = vmath.V2(max(hi.X, n.Pos.X), max(hi.Y, n.Pos.Y))
	}
	if lo.X > hi.X {
		return vmath.Vec2{}, vmath.Vec2{}, false
	}
	return lo, hi, true
}
