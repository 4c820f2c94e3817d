package pattern

import (
	"fmt"

	"github.com/lixenwraith/vi-cloth/physics"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// Builder assembles an arbitrary graph. The first error is kept and
// reported by Topology; later calls are ignored
type Builder struct {
	nodes []physics.Node
	links []physics.Link
	err   error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddNode appends a free node and returns its index
func (b *Builder) AddNode(pos vmath.Vec2, mass float64) int {
	idx := len(b.nodes)
	if b.err != nil {
		return idx
	}
	n, err := physics.NewNode(pos, mass)
	if err != nil {
		b.err = fmt.Errorf("node %d: %w", idx, err)
		return idx
	}
	b.nodes = append(b.nodes, n)
	return idx
}

// Pin marks node i fixed
func (b *Builder) Pin(i int) {
	if b.err != nil {
		return
	}
	if i < 0 || i >= len(b.nodes) {
		b.err = fmt.Errorf("%w: pin index %d outside [0,%d)", physics.ErrInvalidConfig, i, len(b.nodes))
		return
	}
	b.nodes[i].Fixed = true
}

// AddLink joins nodes a and c. rest <= 0 measures the current distance,
// breakLength <= 0 leaves the link unbreakable. Returns the link index
func (b *Builder) AddLink(a, c int, rest, breakLength float64) int {
	idx := len(b.links)
	if b.err != nil {
		return idx
	}
	if rest <= 0 {
		if a < 0 || a >= len(b.nodes) || c < 0 || c >= len(b.nodes) {
			b.err = fmt.Errorf("%w: link %d endpoints %d-%d outside [0,%d)", physics.ErrInvalidConfig, idx, a, c, len(b.nodes))
			return idx
		}
		rest = vmath.V2Dist(b.nodes[a].Pos, b.nodes[c].Pos)
	}
	l := physics.NewLink(a, c, rest)
	if breakLength > 0 {
		l = l.WithBreak(breakLength)
	}
	b.links = append(b.links, l)
	return idx
}

// addScaled adds a link sized by opts relative to the structural unit length
func (b *Builder) addScaled(opts Options, a, c int, unit float64) {
	if b.err != nil {
		return
	}
	measured := vmath.V2Dist(b.nodes[a].Pos, b.nodes[c].Pos)
	b.links = append(b.links, opts.link(a, c, measured, unit))
}

// Topology validates and returns the assembled graph
func (b *Builder) Topology() (Topology, error) {
	if b.err != nil {
		return Topology{}, b.err
	}
	t := Topology{Nodes: b.nodes, Links: b.links}
	if err := t.Validate(); err != nil {
		return Topology{}, err
	}
	return t, nil
}
