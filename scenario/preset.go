package scenario

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/pattern"
)

var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string]func() *Scenario{
	// 20-node rope hanging from a fixed head, one relaxation pass
	"rope": func() *Scenario {
		s := Default()
		s.Name = "rope"
		s.Topology.RestLength = parameter.RestLength
		return s
	},
	"cloth": func() *Scenario {
		s := Default()
		s.Name = "cloth"
		s.Kind = KindGrid
		s.Physics.Passes = 3
		s.Topology.Cols = parameter.ClothCols
		s.Topology.Rows = parameter.ClothRows
		s.Topology.OriginX = -float64(parameter.ClothCols-1) * parameter.NodeSpacing / 2
		s.Topology.Pin = pattern.PinTopRow.String()
		return s
	},
	// Cloth pinned every fourth column whose links tear past TearFactor x rest
	"tearable": func() *Scenario {
		s := Default()
		s.Name = "tearable"
		s.Kind = KindGrid
		s.Physics.Passes = 4
		s.Physics.Compression = 0.5
		s.Topology.Cols = parameter.ClothCols
		s.Topology.Rows = parameter.ClothRows
		s.Topology.OriginX = -float64(parameter.ClothCols-1) * parameter.NodeSpacing / 2
		s.Topology.BreakLength = parameter.NodeSpacing * parameter.TearFactor
		s.Topology.Pin = pattern.PinEveryNth.String()
		s.Topology.PinEvery = 4
		return s
	},
	// Stiff net with shear and bend links, hung by the top corners
	"net": func() *Scenario {
		s := Default()
		s.Name = "net"
		s.Kind = KindGrid
		s.Physics.Passes = 4
		s.Physics.Drag = 0.2
		s.Topology.Cols = parameter.ClothCols / 2
		s.Topology.Rows = parameter.ClothRows
		s.Topology.OriginX = -float64(parameter.ClothCols/2-1) * parameter.NodeSpacing / 2
		s.Topology.Pin = pattern.PinTopCorners.String()
		s.Topology.Shear = true
		s.Topology.Bend = true
		return s
	},
	"web": func() *Scenario {
		s := Default()
		s.Name = "web"
		s.Kind = KindWeb
		s.Physics.Passes = 3
		s.Topology.Cols = parameter.NetSpokes
		s.Topology.Rows = parameter.NetRings
		s.Topology.OriginY = float64(parameter.NetRings+1) * parameter.NodeSpacing
		s.Topology.Pin = pattern.PinTopRow.String()
		s.Topology.BreakLength = parameter.NodeSpacing * parameter.TearFactor
		return s
	},
}

// Preset returns a fresh copy of the named built-in scenario
func Preset(name string) (*Scenario, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}
	return build(), nil
}

// PresetNames lists built-in scenarios in sorted order
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
