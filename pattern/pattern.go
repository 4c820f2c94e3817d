// Package pattern generates simulation topologies: ropes, cloth grids, rings,
// webs and hand-built graphs, with pin patterns and construction-time validation
package pattern

import (
	"github.com/lixenwraith/vi-cloth/physics"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// Topology is the output of any generator: a node slice and links indexing into it
type Topology struct {
	Nodes []physics.Node
	Links []physics.Link
}

// Validate checks every node and link; errors wrap physics.ErrInvalidConfig
func (t *Topology) Validate() error {
	return physics.ValidateAll(t.Nodes, t.Links)
}

// Clone returns a deep copy sharing no backing arrays with t
func (t *Topology) Clone() Topology {
	return Topology{
		Nodes: append([]physics.Node(nil), t.Nodes...),
		Links: append([]physics.Link(nil), t.Links...),
	}
}

// FixedIndices returns indices of fixed nodes in node order
func (t *Topology) FixedIndices() []int {
	var out []int
	for i := range t.Nodes {
		if t.Nodes[i].Fixed {
			out = append(out, i)
		}
	}
	return out
}

// PinOrphans pins every node no link references and parks it at park, at rest
// Returns the number of nodes parked
func (t *Topology) PinOrphans(park vmath.Vec2) int {
	used := make([]bool, len(t.Nodes))
	for _, l := range t.Links {
		if l.A >= 0 && l.A < len(used) {
			used[l.A] = true
		}
		if l.B >= 0 && l.B < len(used) {
			used[l.B] = true
		}
	}

	parked := 0
	for i := range t.Nodes {
		if used[i] {
			continue
		}
		n := &t.Nodes[i]
		n.Fixed = true
		n.Pos = park
		n.PrevPos = park
		n.Vel = vmath.Vec2{}
		n.Force = vmath.Vec2{}
		parked++
	}
	return parked
}
