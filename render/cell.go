package render

// Cell is one composited terminal cell
// Rune 0 renders as a blank
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}
