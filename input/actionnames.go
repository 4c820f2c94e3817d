package input

import (
	"fmt"
	"sort"
)

// actionRegistry maps canonical action names to intents
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry map[string]Intent

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]Intent {
	reg := map[string]Intent{
		// Unbind sentinel
		"none": {},

		"quit":  {Type: IntentQuit},
		"pause": {Type: IntentPause},
		"step":  {Type: IntentStep},
		"reset": {Type: IntentReset},
		"mute":  {Type: IntentMute},
	}
	for slot := 0; slot < AnchorSlots; slot++ {
		reg[fmt.Sprintf("anchor_%d", slot+1)] = Intent{Type: IntentAnchor, Slot: slot}
	}
	return reg
}

// ActionEntry returns the intent bound to an action name
func ActionEntry(name string) (Intent, bool) {
	in, ok := actionRegistry[name]
	return in, ok
}

// ActionName returns the canonical action name for an intent, or "" if none
func ActionName(in Intent) string {
	if in.Type == IntentAnchor {
		return fmt.Sprintf("anchor_%d", in.Slot+1)
	}
	for name, v := range actionRegistry {
		if v == in {
			return name
		}
	}
	return ""
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
