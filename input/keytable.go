package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-cloth/engine"
)

// AnchorSlots mirrors the engine's anchor slot count
const AnchorSlots = engine.AnchorSlots

// KeyTable maps keys to intents
type KeyTable struct {
	// Printable key bindings
	Runes map[rune]Intent

	// Special keys (Ctrl+*, Esc, arrows, function keys)
	Keys map[tcell.Key]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'p': {Type: IntentPause},
			' ': {Type: IntentPause},
			'.': {Type: IntentStep},
			'r': {Type: IntentReset},
			'm': {Type: IntentMute},
		},
		Keys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyCtrlR:  {Type: IntentReset},
			tcell.KeyCtrlS:  {Type: IntentMute},
		},
	}
	for slot := 0; slot < AnchorSlots; slot++ {
		kt.Runes[rune('1'+slot)] = Intent{Type: IntentAnchor, Slot: slot}
	}
	return kt
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: cloneOrEmpty(kt.Runes),
		Keys:  cloneOrEmpty(kt.Keys),
	}
}

func cloneOrEmpty[K comparable](m map[K]Intent) map[K]Intent {
	if m == nil {
		return make(map[K]Intent)
	}
	return maps.Clone(m)
}

// Lookup returns the intent bound to a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
