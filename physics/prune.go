package physics

import (
	"github.com/lixenwraith/vi-cloth/vmath"
)

// Retain keeps links for which keep returns true, preserving order
// Filters in place and returns the shortened slice
func Retain(links []Link, keep func(Link) bool) []Link {
	n := 0
	for _, l := range links {
		if keep(l) {
			links[n] = l
			n++
		}
	}
	// Zero the tail so dropped links do not linger in the backing array
	clear(links[n:])
	return links[:n]
}

// PruneBroken removes breakable links stretched past their threshold
// Returns the surviving links and the number removed
func PruneBroken(nodes []Node, links []Link) ([]Link, int) {
	before := len(links)
	links = Retain(links, func(l Link) bool {
		if !l.Breakable() {
			return true
		}
		return l.Length(nodes) <= l.BreakLength
	})
	return links, before - len(links)
}

// PruneCut removes links whose endpoint segment crosses the tool segment from-to
// Returns the surviving links and the number removed
func PruneCut(nodes []Node, links []Link, from, to vmath.Vec2) ([]Link, int) {
	if from == to {
		return links, 0
	}

	before := len(links)
	links = Retain(links, func(l Link) bool {
		a, b := l.Endpoints(nodes)
		return !vmath.SegmentsIntersect(a, b, from, to)
	})
	return links, before - len(links)
}
