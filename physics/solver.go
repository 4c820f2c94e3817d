package physics

import (
	"github.com/lixenwraith/vi-cloth/vmath"
)

// Solver relaxes distance constraints by repeated Gauss-Seidel sweeps
// It approaches, but never guarantees, exact constraint satisfaction
type Solver struct {
	// Rigidity scales every correction; 1 closes the full error between equal masses
	Rigidity float64
	// Compression scales corrections of links shorter than rest length
	// 1 is symmetric, 0.5 pushes out at half strength to damp compressive ringing
	Compression float64
	// Passes is the number of sweeps per Solve; 0 leaves positions untouched
	Passes int
}

// Solve runs Passes relaxation sweeps over links in slice order
func (s *Solver) Solve(nodes []Node, links []Link) {
	for pass := 0; pass < s.Passes; pass++ {
		s.Relax(nodes, links)
	}
}

// Relax performs one sweep. Each link reads positions already corrected by
// earlier links of the same sweep, so results depend on link order
// Panics with *InvariantError on an out-of-range node index
func (s *Solver) Relax(nodes []Node, links []Link) {
	count := len(nodes)

	for i := range links {
		l := &links[i]
		checkIndex(i, l.A, count)
		checkIndex(i, l.B, count)

		a := &nodes[l.A]
		b := &nodes[l.B]

		r := vmath.V2Sub(b.Pos, a.Pos)
		dist := vmath.V2Mag(r)

		// Coincident endpoints normalize to zero: no correction this sweep
		norm := vmath.V2Normalize(r)
		diff := dist - l.RestLength
		if diff < 0 {
			diff *= s.Compression
		}

		offs := vmath.V2Scale(norm, diff*s.Rigidity/(a.Mass+b.Mass))

		a.AddOffset(vmath.V2Scale(offs, 1/a.Mass))
		b.AddOffset(vmath.V2Scale(offs, -1/b.Mass))
	}
}

// Residual returns the largest absolute length error over links, for diagnostics
func Residual(nodes []Node, links []Link) float64 {
	worst := 0.0
	for i := range links {
		e := links[i].Length(nodes) - links[i].RestLength
		if e < 0 {
			e = -e
		}
		if e > worst {
			worst = e
		}
	}
	return worst
}
