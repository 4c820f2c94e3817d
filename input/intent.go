package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // q, Esc, Ctrl+C
	IntentPause  // p
	IntentStep   // . single step while paused
	IntentReset  // r
	IntentAnchor // 1-4 toggle anchor slot
	IntentMute   // m
	IntentResize // Terminal resize event
)

var intentNames = [...]string{
	IntentNone:   "none",
	IntentQuit:   "quit",
	IntentPause:  "pause",
	IntentStep:   "step",
	IntentReset:  "reset",
	IntentAnchor: "anchor",
	IntentMute:   "mute",
	IntentResize: "resize",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	Slot int // Anchor slot for IntentAnchor, 0-based
}
