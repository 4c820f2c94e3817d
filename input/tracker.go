package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-cloth/engine"
	"github.com/lixenwraith/vi-cloth/parameter"
	"github.com/lixenwraith/vi-cloth/vmath"
)

// Tracker folds mouse events into the per-frame engine.Input
// Owned by the frame loop goroutine; not safe for concurrent use
type Tracker struct {
	view vmath.Viewport

	pointer vmath.Vec2 // Latest pointer, world units
	sampled vmath.Vec2 // Pointer at the previous Sample
	cell    [2]int     // Latest pointer cell
	seen    bool       // A mouse event has arrived
	gesture Gesture
	anchors [AnchorSlots]bool

	trail []vmath.Vec2 // Recent cut positions, oldest first
}

// NewTracker returns a tracker mapping cells to world through view
func NewTracker(view vmath.Viewport) *Tracker {
	return &Tracker{
		view:  view,
		trail: make([]vmath.Vec2, 0, parameter.CutTrailLength),
	}
}

// SetViewport replaces the cell to world mapping, keeping the pointer cell
func (t *Tracker) SetViewport(view vmath.Viewport) {
	t.view = view
	t.pointer = view.ToWorld(t.cell[0], t.cell[1])
	t.sampled = t.pointer
}

func (t *Tracker) Viewport() vmath.Viewport { return t.view }
func (t *Tracker) Gesture() Gesture         { return t.gesture }
func (t *Tracker) Pointer() vmath.Vec2      { return t.pointer }

// Cell returns the terminal cell under the pointer
func (t *Tracker) Cell() (int, int) { return t.cell[0], t.cell[1] }

// HasPointer reports whether any mouse event has positioned the pointer
func (t *Tracker) HasPointer() bool { return t.seen }

// HandleMouse updates pointer position and gesture from a mouse event
func (t *Tracker) HandleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	t.cell = [2]int{x, y}
	t.seen = true
	t.pointer = t.view.ToWorld(x, y)

	next := classify(ev.Buttons(), ev.Modifiers())
	if next != t.gesture {
		// A new gesture starts at the press position, no delta from the hover path
		t.sampled = t.pointer
		t.trail = t.trail[:0]
	}
	t.gesture = next
}

func classify(btn tcell.ButtonMask, mod tcell.ModMask) Gesture {
	left := btn&tcell.Button1 != 0
	switch {
	case left && mod&tcell.ModShift != 0:
		return GestureAnchor
	case btn&tcell.Button2 != 0, left && mod&tcell.ModCtrl != 0:
		return GestureCut
	case left:
		return GestureDrag
	}
	return GestureIdle
}

// ToggleAnchor flips a held anchor slot; out-of-range slots are ignored
func (t *Tracker) ToggleAnchor(slot int) bool {
	if slot < 0 || slot >= AnchorSlots {
		return false
	}
	t.anchors[slot] = !t.anchors[slot]
	return t.anchors[slot]
}

// Anchors returns the toggled anchor slots
func (t *Tracker) Anchors() [AnchorSlots]bool { return t.anchors }

// ReleaseAnchors clears all toggled anchor slots
func (t *Tracker) ReleaseAnchors() { t.anchors = [AnchorSlots]bool{} }

// Sample returns the input for the next frame and advances the pointer baseline
func (t *Tracker) Sample() engine.Input {
	in := engine.Input{
		Pointer:     t.pointer,
		PrevPointer: t.sampled,
		Drag:        t.gesture == GestureDrag,
		Cut:         t.gesture == GestureCut,
		Anchors:     t.anchors,
	}
	if t.gesture == GestureAnchor {
		in.Anchors[0] = true
	}

	if in.Cut {
		if len(t.trail) == cap(t.trail) {
			copy(t.trail, t.trail[1:])
			t.trail = t.trail[:len(t.trail)-1]
		}
		t.trail = append(t.trail, t.pointer)
	} else if len(t.trail) > 0 {
		t.trail = t.trail[:0]
	}

	t.sampled = t.pointer
	return in
}

// Trail returns recent cut positions, oldest first
// The slice is reused by the next Sample
func (t *Tracker) Trail() []vmath.Vec2 { return t.trail }
