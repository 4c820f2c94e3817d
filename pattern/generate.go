package pattern

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/physics"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// nodeCount multiplies generator dimensions without overflowing
// Totals above parameter.MaxNodes fail with ErrInvalidConfig
func nodeCount(dims ...int) (int, error) {
	n := 1
	for _, d := range dims {
		if d < 1 || n > parameter.MaxNodes/d {
			return 0, fmt.Errorf("%w: dimensions %v exceed %d nodes", physics.ErrInvalidConfig, dims, parameter.MaxNodes)
		}
		n *= d
	}
	return n, nil
}

// Line builds a rope of count nodes starting at origin, spaced by step,
// with a link between each consecutive pair
// For a line every node is its own row: PinTopRow and PinFirst pin node 0,
// PinTopCorners pins both ends, PinEveryNth pins every stride-th node
func Line(origin, step vmath.Vec2, count int, opts Options) (Topology, error) {
	if count < 1 {
		return Topology{}, fmt.Errorf("%w: line needs at least one node, got %d", physics.ErrInvalidConfig, count)
	}
	if _, err := nodeCount(count); err != nil {
		return Topology{}, err
	}

	t := Topology{
		Nodes: make([]physics.Node, 0, count),
		Links: make([]physics.Link, 0, count-1),
	}
	unit := vmath.V2Mag(step)

	for i := 0; i < count; i++ {
		n, err := physics.NewNode(vmath.V2Add(origin, vmath.V2Scale(step, float64(i))), opts.mass())
		if err != nil {
			return Topology{}, fmt.Errorf("line node %d: %w", i, err)
		}
		switch opts.Pin {
		case PinFirst, PinTopRow:
			n.Fixed = i == 0
		case PinTopCorners:
			n.Fixed = i == 0 || i == count-1
		case PinEveryNth:
			n.Fixed = i%opts.stride() == 0
		}
		t.Nodes = append(t.Nodes, n)

		if i > 0 {
			t.Links = append(t.Links, opts.link(i-1, i, unit, unit))
		}
	}
	return t, nil
}

// Grid builds a cols x rows cloth in row-major node order
// Links per node, in order: left, up, then shear diagonals, then bend links
func Grid(origin vmath.Vec2, cols, rows int, spacing float64, opts Options) (Topology, error) {
	if cols < 1 || rows < 1 {
		return Topology{}, fmt.Errorf("%w: grid size %dx%d", physics.ErrInvalidConfig, cols, rows)
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return Topology{}, fmt.Errorf("%w: grid spacing %v", physics.ErrInvalidConfig, spacing)
	}
	total, err := nodeCount(cols, rows)
	if err != nil {
		return Topology{}, err
	}

	t := Topology{Nodes: make([]physics.Node, 0, total)}
	idx := func(x, y int) int { return y*cols + x }
	diag := spacing * math.Sqrt2

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pos := vmath.V2Add(origin, vmath.V2(float64(x)*spacing, float64(y)*spacing))
			n, err := physics.NewNode(pos, opts.mass())
			if err != nil {
				return Topology{}, fmt.Errorf("grid node %d,%d: %w", x, y, err)
			}
			n.Fixed = y == 0 && opts.pinnedInRow(x, cols)
			t.Nodes = append(t.Nodes, n)

			i := idx(x, y)
			if x > 0 {
				t.Links = append(t.Links, opts.link(idx(x-1, y), i, spacing, spacing))
			}
			if y > 0 {
				t.Links = append(t.Links, opts.link(idx(x, y-1), i, spacing, spacing))
			}
			if opts.Shear && x > 0 && y > 0 {
				t.Links = append(t.Links,
					opts.link(idx(x-1, y-1), i, diag, spacing),
					opts.link(idx(x, y-1), idx(x-1, y), diag, spacing),
				)
			}
			if opts.Bend {
				if x > 1 {
					t.Links = append(t.Links, opts.link(idx(x-2, y), i, 2*spacing, spacing))
				}
				if y > 1 {
					t.Links = append(t.Links, opts.link(idx(x, y-2), i, 2*spacing, spacing))
				}
			}
		}
	}
	return t, nil
}

// ringPoint returns point i of count on a circle, starting at the top, clockwise on screen
func ringPoint(center vmath.Vec2, radius float64, i, count int) vmath.Vec2 {
	theta := -math.Pi/2 + 2*math.Pi*float64(i)/float64(count)
	return vmath.V2Add(center, vmath.V2(radius*math.Cos(theta), radius*math.Sin(theta)))
}

// pinnedOnRing reports whether spoke s of a ring is pinned
// The top node plays the first column, the whole ring plays the top row and
// top and bottom nodes play the corners
func (o Options) pinnedOnRing(s, count int) bool {
	switch o.Pin {
	case PinFirst:
		return s == 0
	case PinTopRow:
		return true
	case PinTopCorners:
		return s == 0 || s == count/2
	case PinEveryNth:
		return s%o.stride() == 0
	}
	return false
}

// Ring builds a closed loop of count nodes
func Ring(center vmath.Vec2, radius float64, count int, opts Options) (Topology, error) {
	if count < 3 {
		return Topology{}, fmt.Errorf("%w: ring needs at least 3 nodes, got %d", physics.ErrInvalidConfig, count)
	}
	if !(radius > 0) {
		return Topology{}, fmt.Errorf("%w: ring radius %v", physics.ErrInvalidConfig, radius)
	}
	if _, err := nodeCount(count); err != nil {
		return Topology{}, err
	}

	b := NewBuilder()
	for i := 0; i < count; i++ {
		n := b.AddNode(ringPoint(center, radius, i, count), opts.mass())
		if opts.pinnedOnRing(i, count) {
			b.Pin(n)
		}
	}
	chord := vmath.V2Dist(ringPoint(center, radius, 0, count), ringPoint(center, radius, 1, count))
	for i := 0; i < count; i++ {
		b.addScaled(opts, i, (i+1)%count, chord)
	}
	return b.Topology()
}

// Web builds a spider web: a hub node, rings of spokes nodes at radii
// spacing, 2*spacing, ... and radial plus circumferential links
// Pins apply to the outermost ring
func Web(center vmath.Vec2, rings, spokes int, spacing float64, opts Options) (Topology, error) {
	if rings < 1 || spokes < 3 {
		return Topology{}, fmt.Errorf("%w: web needs rings >= 1 and spokes >= 3, got %d/%d", physics.ErrInvalidConfig, rings, spokes)
	}
	if !(spacing > 0) {
		return Topology{}, fmt.Errorf("%w: web spacing %v", physics.ErrInvalidConfig, spacing)
	}
	if _, err := nodeCount(rings, spokes); err != nil {
		return Topology{}, err
	}

	b := NewBuilder()
	hub := b.AddNode(center, opts.mass())
	node := func(r, s int) int { return 1 + r*spokes + s }

	for r := 0; r < rings; r++ {
		for s := 0; s < spokes; s++ {
			i := b.AddNode(ringPoint(center, float64(r+1)*spacing, s, spokes), opts.mass())
			if r == rings-1 && opts.pinnedOnRing(s, spokes) {
				b.Pin(i)
			}
		}
	}

	for r := 0; r < rings; r++ {
		for s := 0; s < spokes; s++ {
			inner := hub
			if r > 0 {
				inner = node(r-1, s)
			}
			b.addScaled(opts, inner, node(r, s), spacing)
			b.addScaled(opts, node(r, s), node(r, (s+1)%spokes), spacing)
		}
	}
	return b.Topology()
}
