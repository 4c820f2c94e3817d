// Package scenario describes a simulation run as a TOML document: physics
// tunables, a topology recipe and view scaling, with built-in presets
package scenario

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/pattern"
	"github.com/lixenwraith/vi-cloth/physics"
	"github.com/lixenwraith/vi-cloth/toml"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// Topology kinds
const (
	KindLine  = "line"
	KindGrid  = "grid"
	KindRing  = "ring"
	KindWeb   = "web"
	KindGraph = "graph"
)

// Scenario is the root of a scenario file
type Scenario struct {
	Name          string     `toml:"name"`
	Kind          string     `toml:"kind"`
	StepsPerFrame int        `toml:"steps_per_frame"`
	Physics       Physics    `toml:"physics"`
	Topology      Topology   `toml:"topology"`
	View          View       `toml:"view"`
	Nodes         []NodeSpec `toml:"node,omitempty"`
	Links         []LinkSpec `toml:"link,omitempty"`
}

type Physics struct {
	DT              float64 `toml:"dt"`
	Gravity         float64 `toml:"gravity"`
	Drag            float64 `toml:"drag"`
	Rigidity        float64 `toml:"rigidity"`
	Compression     float64 `toml:"compression"`
	Passes          int     `toml:"passes"`
	Mode            string  `toml:"mode"`
	CaptureRadius   float64 `toml:"capture_radius"`
	PointerStrength float64 `toml:"pointer_strength"`
}

// Topology is the generator recipe for every kind except graph
// line: cols nodes hanging down from the origin
// grid: cols x rows cloth
// ring: cols nodes around the origin, spacing apart
// web: rows rings of cols spokes, spacing between rings
type Topology struct {
	OriginX     float64 `toml:"origin_x"`
	OriginY     float64 `toml:"origin_y"`
	Cols        int     `toml:"cols"`
	Rows        int     `toml:"rows"`
	Spacing     float64 `toml:"spacing"`
	Mass        float64 `toml:"mass"`
	RestLength  float64 `toml:"rest_length"`
	BreakLength float64 `toml:"break_length"`
	Pin         string  `toml:"pin"`
	PinEvery    int     `toml:"pin_every"`
	Shear       bool    `toml:"shear"`
	Bend        bool    `toml:"bend"`
}

// View maps world units to terminal cells
type View struct {
	ScaleX float64 `toml:"scale_x"`
	ScaleY float64 `toml:"scale_y"`
}

// NodeSpec is one hand-placed node of a graph scenario; mass 0 selects the default
type NodeSpec struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Mass  float64 `toml:"mass"`
	Fixed bool    `toml:"fixed"`
}

// LinkSpec is one hand-placed link; rest_length 0 measures the initial distance
type LinkSpec struct {
	A           int     `toml:"a"`
	B           int     `toml:"b"`
	RestLength  float64 `toml:"rest_length"`
	BreakLength float64 `toml:"break_length"`
}

// Default returns a scenario carrying parameter defaults and no topology
func Default() *Scenario {
	cfg := engine.DefaultConfig()
	return &Scenario{
		Kind:          KindLine,
		StepsPerFrame: parameter.StepsPerFrame,
		Physics: Physics{
			DT:              cfg.DT,
			Gravity:         cfg.Gravity,
			Drag:            cfg.Drag,
			Rigidity:        cfg.Rigidity,
			Compression:     cfg.Compression,
			Passes:          cfg.Passes,
			Mode:            cfg.Mode.String(),
			CaptureRadius:   cfg.CaptureRadius,
			PointerStrength: cfg.PointerStrength,
		},
		Topology: Topology{
			Cols:    parameter.RopeNodes,
			Rows:    1,
			Spacing: parameter.NodeSpacing,
			Mass:    parameter.NodeMass,
			Pin:     pattern.PinFirst.String(),
		},
		View: View{ScaleX: parameter.ViewScaleX, ScaleY: parameter.ViewScaleY},
	}
}

// Parse decodes a scenario document over Default, so omitted keys keep defaults
// Unknown keys are rejected
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode renders the scenario as TOML
func (s *Scenario) Encode() ([]byte, error) {
	return toml.Marshal(s)
}

// Validate checks fields that Build cannot report by itself
func (s *Scenario) Validate() error {
	switch s.Kind {
	case KindLine, KindGrid, KindRing, KindWeb, KindGraph:
	default:
		return fmt.Errorf("%w: unknown kind %q", physics.ErrInvalidConfig, s.Kind)
	}
	if s.StepsPerFrame < 1 {
		return fmt.Errorf("%w: steps_per_frame %d must be >= 1", physics.ErrInvalidConfig, s.StepsPerFrame)
	}
	if !(s.View.ScaleX > 0) || !(s.View.ScaleY > 0) {
		return fmt.Errorf("%w: view scale %vx%v must be > 0", physics.ErrInvalidConfig, s.View.ScaleX, s.View.ScaleY)
	}
	if s.Kind == KindGraph && len(s.Nodes) == 0 {
		return fmt.Errorf("%w: graph scenario has no [[node]] entries", physics.ErrInvalidConfig)
	}
	return nil
}

// Config converts the physics section into an engine configuration
func (s *Scenario) Config() (engine.Config, error) {
	mode, err := physics.ParseIntegrationMode(s.Physics.Mode)
	if err != nil {
		return engine.Config{}, err
	}
	cfg := engine.Config{
		DT:              s.Physics.DT,
		Gravity:         s.Physics.Gravity,
		Drag:            s.Physics.Drag,
		Rigidity:        s.Physics.Rigidity,
		Compression:     s.Physics.Compression,
		Passes:          s.Physics.Passes,
		Mode:            mode,
		CaptureRadius:   s.Physics.CaptureRadius,
		PointerStrength: s.Physics.PointerStrength,
	}
	return cfg, cfg.Validate()
}

func (s *Scenario) options() (pattern.Options, error) {
	pin, err := pattern.ParsePinPattern(s.Topology.Pin)
	if err != nil {
		return pattern.Options{}, err
	}
	return pattern.Options{
		Mass:        s.Topology.Mass,
		RestLength:  s.Topology.RestLength,
		BreakLength: s.Topology.BreakLength,
		Pin:         pin,
		PinEvery:    s.Topology.PinEvery,
		Shear:       s.Topology.Shear,
		Bend:        s.Topology.Bend,
	}, nil
}

// BuildTopology generates the node and link set described by the scenario
func (s *Scenario) BuildTopology() (pattern.Topology, error) {
	if err := s.Validate(); err != nil {
		return pattern.Topology{}, err
	}
	opts, err := s.options()
	if err != nil {
		return pattern.Topology{}, err
	}

	t := s.Topology
	origin := vmath.V2(t.OriginX, t.OriginY)

	switch s.Kind {
	case KindLine:
		return pattern.Line(origin, vmath.V2(0, t.Spacing), t.Cols, opts)
	case KindGrid:
		return pattern.Grid(origin, t.Cols, t.Rows, t.Spacing, opts)
	case KindRing:
		if t.Cols < 3 {
			return pattern.Topology{}, fmt.Errorf("%w: ring needs cols >= 3, got %d", physics.ErrInvalidConfig, t.Cols)
		}
		// Radius giving a chord of spacing between neighbours
		radius := t.Spacing / (2 * math.Sin(math.Pi/float64(t.Cols)))
		return pattern.Ring(origin, radius, t.Cols, opts)
	case KindWeb:
		return pattern.Web(origin, t.Rows, t.Cols, t.Spacing, opts)
	}
	return s.buildGraph()
}

func (s *Scenario) buildGraph() (pattern.Topology, error) {
	b := pattern.NewBuilder()
	for _, n := range s.Nodes {
		mass := n.Mass
		if mass == 0 {
			mass = parameter.NodeMass
		}
		i := b.AddNode(vmath.V2(n.X, n.Y), mass)
		if n.Fixed {
			b.Pin(i)
		}
	}
	for _, l := range s.Links {
		b.AddLink(l.A, l.B, l.RestLength, l.BreakLength)
	}
	topo, err := b.Topology()
	if err != nil {
		return pattern.Topology{}, err
	}
	topo.PinOrphans(vmath.V2(parameter.OrphanPark[0], parameter.OrphanPark[1]))
	return topo, nil
}

// Build returns a ready simulation for the scenario
func (s *Scenario) Build() (*engine.Simulation, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.label(), err)
	}
	topo, err := s.BuildTopology()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.label(), err)
	}
	return engine.New(cfg, topo)
}

func (s *Scenario) label() string {
	if strings.TrimSpace(s.Name) == "" {
		return s.Kind
	}
	return s.Name
}
