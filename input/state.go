package input

// Gesture is the pointer action selected by the held button and modifiers
type Gesture uint8

const (
	GestureIdle   Gesture = iota // No button held
	GestureDrag                  // Left button: pointer force
	GestureCut                   // Right button, or Ctrl + left: cut links
	GestureAnchor                // Shift + left: anchor slot 0 follows pointer
)

func (g Gesture) String() string {
	switch g {
	case GestureDrag:
		return "drag"
	case GestureCut:
		return "cut"
	case GestureAnchor:
		return "anchor"
	}
	return "idle"
}
