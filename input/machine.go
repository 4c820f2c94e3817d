package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into intents
// Mouse events update the pointer tracker and yield IntentNone
type Machine struct {
	keyTable *KeyTable
	tracker  *Tracker
}

// NewMachine creates a machine with the given bindings, nil for defaults
func NewMachine(keys *KeyTable, tracker *Tracker) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keyTable: keys, tracker: tracker}
}

func (m *Machine) Tracker() *Tracker   { return m.tracker }
func (m *Machine) KeyTable() *KeyTable { return m.keyTable }

// Process parses one event and returns the resulting intent
// Anchor intents are applied to the tracker before being returned
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in := m.keyTable.Lookup(ev)
		if in.Type == IntentAnchor {
			m.tracker.ToggleAnchor(in.Slot)
		}
		return in
	case *tcell.EventMouse:
		m.tracker.HandleMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
