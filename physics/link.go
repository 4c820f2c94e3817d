package physics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-cloth/vmath"
)

// Link is a distance constraint between two nodes referenced by index
// Links never own nodes; several links may share a pair
type Link struct {
	A, B        int
	RestLength  float64 // Target endpoint distance, constant for the run
	BreakLength float64 // Link is removed once stretched past this, <= 0 disables
}

// NewLink returns an unbreakable link between nodes a and b
func NewLink(a, b int, rest float64) Link {
	return Link{A: a, B: b, RestLength: rest}
}

// WithBreak returns a copy of l that breaks when stretched past length
func (l Link) WithBreak(length float64) Link {
	l.BreakLength = length
	return l
}

// Breakable reports whether the link has a breakage threshold
func (l Link) Breakable() bool {
	return l.BreakLength > 0
}

// Length returns the current endpoint distance
// Panics with *InvariantError on an out-of-range node index
func (l Link) Length(nodes []Node) float64 {
	a, b := l.Endpoints(nodes)
	return vmath.V2Dist(a, b)
}

// Endpoints returns the current endpoint positions
// Panics with *InvariantError on an out-of-range node index
func (l Link) Endpoints(nodes []Node) (vmath.Vec2, vmath.Vec2) {
	checkIndex(-1, l.A, len(nodes))
	checkIndex(-1, l.B, len(nodes))
	return nodes[l.A].Pos, nodes[l.B].Pos
}

// Validate checks the link against a node count at construction time
func (l Link) Validate(nodeCount int) error {
	if l.A < 0 || l.A >= nodeCount {
		return fmt.Errorf("%w: link endpoint a=%d outside [0,%d)", ErrInvalidConfig, l.A, nodeCount)
	}
	if l.B < 0 || l.B >= nodeCount {
		return fmt.Errorf("%w: link endpoint b=%d outside [0,%d)", ErrInvalidConfig, l.B, nodeCount)
	}
	if l.A == l.B {
		return fmt.Errorf("%w: link joins node %d to itself", ErrInvalidConfig, l.A)
	}
	if !(l.RestLength >= 0) || math.IsInf(l.RestLength, 0) {
		return fmt.Errorf("%w: link %d-%d rest length %v must be finite and >= 0", ErrInvalidConfig, l.A, l.B, l.RestLength)
	}
	if math.IsNaN(l.BreakLength) {
		return fmt.Errorf("%w: link %d-%d break length is NaN", ErrInvalidConfig, l.A, l.B)
	}
	return nil
}

// ValidateAll checks nodes and links together, as done once before a run
func ValidateAll(nodes []Node, links []Link) error {
	if len(nodes) == 0 {
		return fmt.Errorf("%w: topology has no nodes", ErrInvalidConfig)
	}
	for i := range nodes {
		if err := checkMass(nodes[i].Mass); err != nil {
			return fmt.Errorf("node %d: %w", i, err)
		}
		if !nodes[i].Pos.IsFinite() || !nodes[i].PrevPos.IsFinite() {
			return fmt.Errorf("node %d: %w: position is not finite", i, ErrInvalidConfig)
		}
	}
	for i := range links {
		if err := links[i].Validate(len(nodes)); err != nil {
			return fmt.Errorf("link %d: %w", i, err)
		}
	}
	return nil
}
