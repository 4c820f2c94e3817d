package physics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-cloth/vmath"
)

// Node is a point mass. Fixed nodes ignore every force and offset
type Node struct {
	Pos     vmath.Vec2 // Current position
	PrevPos vmath.Vec2 // Position at the start of the last integration
	Vel     vmath.Vec2 // Cached velocity, used by drag and integration
	Force   vmath.Vec2 // Accumulator, cleared once integration consumes it
	Mass    float64
	Fixed   bool
}

// NewNode returns a free node at rest at pos
// Mass must be finite and positive since it divides force and weights corrections
func NewNode(pos vmath.Vec2, mass float64) (Node, error) {
	if err := checkMass(mass); err != nil {
		return Node{}, err
	}
	if !pos.IsFinite() {
		return Node{}, fmt.Errorf("%w: node position %+v is not finite", ErrInvalidConfig, pos)
	}
	return Node{Pos: pos, PrevPos: pos, Mass: mass}, nil
}

// Pinned returns a copy of n marked fixed
func (n Node) Pinned() Node {
	n.Fixed = true
	return n
}

func checkMass(mass float64) error {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return fmt.Errorf("%w: node mass %v must be finite and > 0", ErrInvalidConfig, mass)
	}
	return nil
}

// ApplyGravity adds the weight (0, g*mass), +Y is down
func (n *Node) ApplyGravity(g float64) {
	if n.Fixed {
		return
	}
	n.Force.Y += g * n.Mass
}

// ApplyDrag adds a force opposing the cached velocity
func (n *Node) ApplyDrag(k float64) {
	if n.Fixed {
		return
	}
	n.Force = vmath.V2Sub(n.Force, vmath.V2Scale(n.Vel, k))
}

// ApplyImpulse adds f to the accumulator regardless of Fixed, callers gate
func (n *Node) ApplyImpulse(f vmath.Vec2) {
	n.Force = vmath.V2Add(n.Force, f)
}

// AddOffset moves a free node by offs; used by constraint relaxation
func (n *Node) AddOffset(offs vmath.Vec2) {
	if n.Fixed {
		return
	}
	n.Pos = vmath.V2Add(n.Pos, offs)
}

// Place overrides the position of any node, fixed or not
// PrevPos is left alone, so a dragged anchor is allowed to leave lockstep
func (n *Node) Place(pos vmath.Vec2) {
	n.Pos = pos
}

// Differentiate recomputes velocity from the corrected displacement of the step and
// clears the force accumulator. Only used with IntegrateEuler, after relaxation
func (n *Node) Differentiate(dt float64) {
	if n.Fixed {
		return
	}
	n.Vel = vmath.V2Scale(vmath.V2Sub(n.Pos, n.PrevPos), 1/dt)
	n.Force = vmath.Vec2{}
}
