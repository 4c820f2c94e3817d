package vmath

// Viewport maps world coordinates to terminal cells
// Cell = (world - Origin) * Scale, so Origin is the world point at cell (0,0)
type Viewport struct {
	Origin Vec2
	ScaleX float64
	ScaleY float64
}

// ToCell returns the fractional cell position of world point p
func (v Viewport) ToCell(p Vec2) Vec2 {
	return Vec2{(p.X - v.Origin.X) * v.ScaleX, (p.Y - v.Origin.Y) * v.ScaleY}
}

// ToWorld returns the world position of the center of cell (x, y)
func (v Viewport) ToWorld(x, y int) Vec2 {
	return Vec2{
		v.Origin.X + (float64(x)+0.5)/v.ScaleX,
		v.Origin.Y + (float64(y)+0.5)/v.ScaleY,
	}
}

// CenterOn sets Origin so world point p lands on the cell (col, row)
func (v *Viewport) CenterOn(p Vec2, col, row int) {
	v.Origin = Vec2{
		p.X - (float64(col)+0.5)/v.ScaleX,
		p.Y - (float64(row)+0.5)/v.ScaleY,
	}
}
