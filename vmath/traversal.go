package vmath

import (
	"math"
)

// Traverse visits every grid cell intersected by the line from a to b, one cell per unit
// Uses Supercover DDA so no cell is skipped; callback returning false stops the walk
// Non-finite endpoints visit nothing
func Traverse(a, b Vec2, callback func(x, y int) bool) {
	if !a.IsFinite() || !b.IsFinite() {
		return
	}

	ix, iy := Cell(a.X), Cell(a.Y)
	targetX, targetY := Cell(b.X), Cell(b.Y)

	if ix == targetX && iy == targetY {
		callback(ix, iy)
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
		dx = -dx
	}
	if dy < 0 {
		stepY = -1
		dy = -dy
	}

	// Parametric distance to the next vertical/horizontal cell boundary
	var tMaxX, tMaxY, tDeltaX, tDeltaY float64
	if dx == 0 {
		tMaxX = math.Inf(1)
	} else {
		tDeltaX = 1 / dx
		frac := a.X - math.Floor(a.X)
		if stepX > 0 {
			tMaxX = (1 - frac) * tDeltaX
		} else {
			tMaxX = frac * tDeltaX
		}
	}

	if dy == 0 {
		tMaxY = math.Inf(1)
	} else {
		tDeltaY = 1 / dy
		frac := a.Y - math.Floor(a.Y)
		if stepY > 0 {
			tMaxY = (1 - frac) * tDeltaY
		} else {
			tMaxY = frac * tDeltaY
		}
	}

	if !callback(ix, iy) {
		return
	}

	// Loop until both indices match targets
	for ix != targetX || iy != targetY {
		if tMaxX < tMaxY {
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			} else {
				// X is done, forced to step Y
				iy += stepY
				tMaxY += tDeltaY
			}
		} else if tMaxX > tMaxY {
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			} else {
				// Y is done, forced to step X
				ix += stepX
				tMaxX += tDeltaX
			}
		} else {
			// Diagonal step (tMaxX == tMaxY)
			if ix != targetX {
				ix += stepX
				tMaxX += tDeltaX
			}
			if iy != targetY {
				iy += stepY
				tMaxY += tDeltaY
			}
		}

		if !callback(ix, iy) {
			break
		}
	}
}

// Cell returns the integer cell containing coordinate f
func Cell(f float64) int {
	return int(math.Floor(f))
}
