package pattern

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/physics"
)

// PinPattern selects which generated nodes start fixed
type PinPattern uint8

const (
	PinNone PinPattern = iota
	PinFirst
	PinTopRow
	PinTopCorners
	PinEveryNth
)

var pinNames = map[PinPattern]string{
	PinNone:       "none",
	PinFirst:      "first",
	PinTopRow:     "top_row",
	PinTopCorners: "top_corners",
	PinEveryNth:   "every_nth",
}

func (p PinPattern) String() string {
	if name, ok := pinNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PinPattern(%d)", uint8(p))
}

// ParsePinPattern maps a config string to a PinPattern; empty selects PinNone
func ParsePinPattern(s string) (PinPattern, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PinNone, nil
	}
	s = strings.ReplaceAll(s, "-", "_")
	for p, name := range pinNames {
		if name == s {
			return p, nil
		}
	}
	return PinNone, fmt.Errorf("%w: unknown pin pattern %q", physics.ErrInvalidConfig, s)
}

// Options shape generated topologies
type Options struct {
	Mass float64 // Per-node mass, 0 selects parameter.NodeMass

	// RestLength of structural links; <= 0 measures from initial positions
	// Shear and bend links scale it by their initial length ratio
	RestLength float64

	// BreakLength of structural links; <= 0 leaves links unbreakable
	BreakLength float64

	Pin      PinPattern
	PinEvery int // Stride for PinEveryNth

	Shear bool // Grid: both diagonals per cell
	Bend  bool // Grid: skip-one links along rows and columns
}

func (o Options) mass() float64 {
	if o.Mass == 0 {
		return parameter.NodeMass
	}
	return o.Mass
}

func (o Options) stride() int {
	if o.PinEvery < 1 {
		return 1
	}
	return o.PinEvery
}

// link builds a link whose rest and break lengths follow the structural
// settings scaled by measured/unit
func (o Options) link(a, b int, measured, unit float64) physics.Link {
	ratio := 1.0
	if unit > 0 {
		ratio = measured / unit
	}

	rest := measured
	if o.RestLength > 0 {
		rest = o.RestLength * ratio
	}
	l := physics.NewLink(a, b, rest)
	if o.BreakLength > 0 {
		l = l.WithBreak(o.BreakLength * ratio)
	}
	return l
}

// pinnedInRow reports whether column x of the top row is pinned
// First and TopCorners are handled by callers where they differ
func (o Options) pinnedInRow(x, cols int) bool {
	switch o.Pin {
	case PinFirst:
		return x == 0
	case PinTopRow:
		return true
	case PinTopCorners:
		return x == 0 || x == cols-1
	case PinEveryNth:
		return x%o.stride() == 0
	}
	return false
}
