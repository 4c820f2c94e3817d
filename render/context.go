package render

import (
	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	Width  int
	Height int

	// World to cell mapping for the play area
	View vmath.Viewport

	// Pointer cell and gesture name
	PointerX int
	PointerY int
	Gesture  string

	// Node index under the pointer, -1 for none
	Hover int

	// Recent cut gesture positions, world units
	Trail []vmath.Vec2

	Scenario string
	Paused   bool
	Muted    bool
	Anchors  [engine.AnchorSlots]bool

	// Links removed since start, by cause
	Broken int
	Cut    int
}

// PlayHeight is the number of rows available to the simulation view
// The bottom row is reserved for the status bar
func (c RenderContext) PlayHeight() int {
	return max(c.Height-1, 0)
}

// ToCell maps a world position to its fractional cell
func (c RenderContext) ToCell(p vmath.Vec2) vmath.Vec2 {
	return c.View.ToCell(p)
}
