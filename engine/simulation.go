// Package engine orchestrates the fixed-step simulation: forcing, integration,
// relaxation, pruning and anchor overrides, plus a read-only snapshot for hosts
package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/pattern"
	"github.com/lixenwraith/vi-cloth/physics"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// AnchorSlots is the number of fixed nodes an Input can drag
const AnchorSlots = parameter.AnchorSlots

// Input is the host sample consumed by one step
type Input struct {
	Pointer     vmath.Vec2 // World-space pointer position
	PrevPointer vmath.Vec2 // Pointer position at the previous sample
	Drag        bool       // Pull nearby free nodes along the pointer delta
	Cut         bool       // Remove links crossed by PrevPointer -> Pointer

	// Anchors[i] places the i-th fixed node, in node order, at Pointer
	Anchors [AnchorSlots]bool
}

// StepResult reports what one or more steps changed
type StepResult struct {
	Tick     uint64 // Tick after the last step
	Broken   int    // Links removed by breakage
	Cut      int    // Links removed by the cut tool
	Captured int    // Node captures by the pointer field, summed over steps
}

func (r *StepResult) add(o StepResult) {
	r.Tick = o.Tick
	r.Broken += o.Broken
	r.Cut += o.Cut
	r.Captured += o.Captured
}

// Simulation owns the node and link storage for one run
// Not safe for concurrent use; hosts step and snapshot from one goroutine
type Simulation struct {
	cfg    Config
	solver physics.Solver

	nodes   []physics.Node
	links   []physics.Link
	anchors []int // Fixed node indices at construction, in node order

	initial pattern.Topology
	tick    uint64
}

// New validates cfg and topo and returns a simulation owning a copy of topo
func New(cfg Config, topo pattern.Topology) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := topo.Validate(); err != nil {
		return nil, fmt.Errorf("topology: %w", err)
	}

	s := &Simulation{
		cfg:     cfg,
		solver:  cfg.solver(),
		initial: topo.Clone(),
	}
	s.Reset()
	return s, nil
}

// Reset restores the topology given to New and zeroes the tick
func (s *Simulation) Reset() {
	c := s.initial.Clone()
	s.nodes = c.Nodes
	s.links = c.Links
	s.anchors = c.FixedIndices()
	s.tick = 0
}

// Step advances the simulation by one fixed time step
func (s *Simulation) Step(in Input) StepResult {
	var res StepResult
	mode := s.cfg.Mode

	// Force accumulators are already zero: Differentiate clears them in Euler
	// mode, Integrate clears them in Verlet mode

	physics.ApplyGravity(s.nodes, s.cfg.Gravity)
	physics.ApplyDrag(s.nodes, s.cfg.Drag)

	if in.Drag {
		res.Captured = physics.ApplyPointerForce(s.nodes, physics.PointerField{
			Pos:      in.Pointer,
			Delta:    vmath.V2Sub(in.Pointer, in.PrevPointer),
			Radius:   s.cfg.CaptureRadius,
			Strength: s.cfg.PointerStrength,
		})
	}

	for i := range s.nodes {
		s.nodes[i].Integrate(s.cfg.DT, mode)
	}

	s.solver.Solve(s.nodes, s.links)

	if mode.UsesDifferentiate() {
		for i := range s.nodes {
			s.nodes[i].Differentiate(s.cfg.DT)
		}
	}

	s.links, res.Broken = physics.PruneBroken(s.nodes, s.links)

	if in.Cut {
		s.links, res.Cut = physics.PruneCut(s.nodes, s.links, in.PrevPointer, in.Pointer)
	}

	for slot, on := range in.Anchors {
		if on && slot < len(s.anchors) {
			s.nodes[s.anchors[slot]].Place(in.Pointer)
		}
	}

	s.tick++
	res.Tick = s.tick
	return res
}

// Run steps n times with the same input and returns the summed result
func (s *Simulation) Run(n int, in Input) StepResult {
	res := StepResult{Tick: s.tick}
	for i := 0; i < n; i++ {
		res.add(s.Step(in))
	}
	return res
}

func (s *Simulation) Config() Config { return s.cfg }
func (s *Simulation) Tick() uint64   { return s.tick }
func (s *Simulation) NodeCount() int { return len(s.nodes) }
func (s *Simulation) LinkCount() int { return len(s.links) }

// Node returns a copy of node i
func (s *Simulation) Node(i int) physics.Node {
	return s.nodes[i]
}

// Anchors returns the node indices addressed by Input.Anchors, in slot order
func (s *Simulation) Anchors() []int {
	return append([]int(nil), s.anchors...)
}

// Nearest returns the node closest to p within the capture radius, or -1
func (s *Simulation) Nearest(p vmath.Vec2) int {
	return physics.Nearest(s.nodes, p, s.cfg.CaptureRadius)
}

// Residual returns the worst link length error, for diagnostics
func (s *Simulation) Residual() float64 {
	return physics.Residual(s.nodes, s.links)
}
