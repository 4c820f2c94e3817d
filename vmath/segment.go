package vmath

// CCW reports whether a, b, c turn counter-clockwise (in a Y-up frame)
// Comparison is exact: collinear triples report false
func CCW(a, b, c Vec2) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// SegmentsIntersect reports whether segment a-b crosses segment c-d
// Four orientation tests, no epsilon. Touching or collinear overlap is
// not detected and near-parallel crossings can go either way
func SegmentsIntersect(a, b, c, d Vec2) bool {
	return CCW(a, c, d) != CCW(b, c, d) && CCW(a, b, c) != CCW(a, b, d)
}

// ClipSegment clips segment a-b to the axis-aligned box [lo, hi] (Liang-Barsky)
// Returns the clipped endpoints and false if the segment lies fully outside
func ClipSegment(a, b, lo, hi Vec2) (Vec2, Vec2, bool) {
	t0, t1 := 0.0, 1.0
	dx := b.X - a.X
	dy := b.Y - a.Y

	// p*t <= q for each of the four box edges
	edges := [4][2]float64{
		{-dx, a.X - lo.X},
		{dx, hi.X - a.X},
		{-dy, a.Y - lo.Y},
		{dy, hi.Y - a.Y},
	}

	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, b, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	return V2Lerp(a, b, t0), V2Lerp(a, b, t1), true
}
