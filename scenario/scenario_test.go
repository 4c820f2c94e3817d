package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/physics"
	"github.com/lixenwraith/vi-cloth/toml"
	"github.com/lixenwraith/vi-cloth/vmath"
)

func TestPresetsBuild(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			s, err := Preset(name)
			if err != nil {
				t.Fatalf("Preset: %v", err)
			}
			sim, err := s.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if sim.NodeCount() == 0 || sim.LinkCount() == 0 {
				t.Errorf("Empty simulation: %d nodes, %d links", sim.NodeCount(), sim.LinkCount())
			}
			if len(sim.Anchors()) == 0 {
				t.Error("Expected at least one fixed node")
			}
		})
	}

	if _, err := Preset("blanket"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}
}

func TestRopePresetMatchesDefaults(t *testing.T) {
	s, _ := Preset("rope")
	topo, err := s.BuildTopology()
	if err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}
	if len(topo.Nodes) != parameter.RopeNodes || len(topo.Links) != parameter.RopeNodes-1 {
		t.Errorf("Unexpected rope size %d/%d", len(topo.Nodes), len(topo.Links))
	}
	if topo.Links[0].RestLength != parameter.RestLength {
		t.Errorf("Expected rest %f, got %f", parameter.RestLength, topo.Links[0].RestLength)
	}
	cfg, err := s.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if cfg.DT != 0.05 || cfg.Gravity != 18 || cfg.Passes != 1 {
		t.Errorf("Unexpected rope physics %+v", cfg)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	s, err := Parse([]byte(`
name = "custom"
kind = "grid"

[physics]
passes = 5
mode = "verlet"

[topology]
cols = 4
rows = 3
pin = "top_corners"
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Physics.Gravity != parameter.Gravity || s.Physics.DT != parameter.StepDT {
		t.Errorf("Expected omitted physics keys to keep defaults, got %+v", s.Physics)
	}
	if s.StepsPerFrame != parameter.StepsPerFrame {
		t.Errorf("Expected default steps per frame, got %d", s.StepsPerFrame)
	}

	sim, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sim.NodeCount() != 12 || sim.Config().Mode != physics.IntegrateVerlet || sim.Config().Passes != 5 {
		t.Errorf("Unexpected simulation: nodes=%d cfg=%+v", sim.NodeCount(), sim.Config())
	}
	if got := sim.Anchors(); len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("Expected top corners pinned, got %v", got)
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]struct {
		input string
		want  error
	}{
		"unknown key":      {"name = \"x\"\nwobble = 1\n", toml.ErrDecode},
		"unknown nested":   {"[physics]\ngravty = 9\n", toml.ErrDecode},
		"syntax":           {"name = \n", toml.ErrSyntax},
		"bad kind":         {"kind = \"blob\"\n", physics.ErrInvalidConfig},
		"zero steps":       {"steps_per_frame = 0\n", physics.ErrInvalidConfig},
		"empty graph":      {"kind = \"graph\"\n", physics.ErrInvalidConfig},
		"negative scale":   {"[view]\nscale_x = -1.0\n", physics.ErrInvalidConfig},
		"wrong value type": {"steps_per_frame = \"two\"\n", toml.ErrDecode},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(c.input)); !errors.Is(err, c.want) {
				t.Errorf("Expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestBuildRejectsBadPhysics(t *testing.T) {
	cases := map[string]string{
		"mode":    "[physics]\nmode = \"rk4\"\n",
		"dt":      "[physics]\ndt = 0.0\n",
		"pin":     "[topology]\npin = \"sideways\"\n",
		"spacing": "kind = \"grid\"\n[topology]\nspacing = 0.0\n",
		"ring":    "kind = \"ring\"\n[topology]\ncols = 2\n",
		"huge":    "kind = \"grid\"\n[topology]\ncols = 4000000000\nrows = 4000000000\n",
		"long":    "kind = \"line\"\n[topology]\ncols = 4000000000\n",
		"web":     "kind = \"web\"\n[topology]\ncols = 4000000000\nrows = 4000000000\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := Parse([]byte(input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if _, err := s.Build(); !errors.Is(err, physics.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestGraphScenario(t *testing.T) {
	s, err := Parse([]byte(`
kind = "graph"

[[node]]
x = 0.0
y = 0.0
fixed = true

[[node]]
x = 0.0
y = 10.0
mass = 2.0

[[node]]
x = 50.0
y = 50.0

[[link]]
a = 0
b = 1
break_length = 30.0
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	topo, err := s.BuildTopology()
	if err != nil {
		t.Fatalf("BuildTopology: %v", err)
	}

	if topo.Links[0].RestLength != 10 || topo.Links[0].BreakLength != 30 {
		t.Errorf("Unexpected link %+v", topo.Links[0])
	}
	if topo.Nodes[1].Mass != 2 || topo.Nodes[0].Mass != parameter.NodeMass {
		t.Errorf("Unexpected masses %v %v", topo.Nodes[0].Mass, topo.Nodes[1].Mass)
	}
	orphan := topo.Nodes[2]
	park := vmath.V2(parameter.OrphanPark[0], parameter.OrphanPark[1])
	if !orphan.Fixed || orphan.Pos != park {
		t.Errorf("Expected unlinked node parked, got %+v", orphan)
	}

	s.Links = append(s.Links, LinkSpec{A: 1, B: 7})
	if _, err := s.BuildTopology(); !errors.Is(err, physics.ErrInvalidConfig) {
		t.Errorf("Expected out-of-range link rejected, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, name := range PresetNames() {
		s, _ := Preset(name)
		data, err := s.Encode()
		if err != nil {
			t.Fatalf("%s: Encode: %v", name, err)
		}
		back, err := Parse(data)
		if err != nil {
			t.Fatalf("%s: Parse of encoded preset: %v\n%s", name, err, data)
		}
		if back.Physics != s.Physics || back.Topology != s.Topology || back.View != s.View || back.Kind != s.Kind {
			t.Errorf("%s: round trip mismatch\n%+v\n%+v", name, s, back)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ring.toml")
	if err := os.WriteFile(path, []byte("kind = \"ring\"\n[topology]\ncols = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sim, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sim.NodeCount() != 10 || sim.LinkCount() != 10 {
		t.Errorf("Expected closed ring of 10, got %d/%d", sim.NodeCount(), sim.LinkCount())
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}
