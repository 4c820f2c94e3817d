package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-cloth/toml"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"dot":       '.',
}

// Special key names accepted in the [keys] section
var keyNames = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keyNames["ctrl_"+string(c)] = tcell.KeyCtrlA + tcell.Key(c-'a')
	}
}

// KeyByName resolves a special key name, case-insensitive, '-' and '_' equivalent
func KeyByName(name string) (tcell.Key, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	k, ok := keyNames[name]
	return k, ok
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Sections: [runes] for printable keys, [keys] for special keys
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	raw, err := toml.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	for name, section := range raw {
		sectionMap, ok := section.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section [%s]: expected table, got %T", name, section)
		}

		switch name {
		case "runes":
			if kt.Runes, err = parseRuneSection(name, sectionMap); err != nil {
				return nil, err
			}
		case "keys":
			if kt.Keys, err = parseSpecialKeySection(name, sectionMap); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown keymap section [%s]", name)
		}
	}

	return kt, nil
}

// LoadKeyFile reads a keymap file and merges it over the default bindings
func LoadKeyFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

// parseRuneSection parses a TOML section of rune key → action name bindings
func parseRuneSection(section string, data map[string]any) (map[rune]Intent, error) {
	result := make(map[rune]Intent, len(data))

	for keyStr, val := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}

		in, err := resolveValue(section, keyStr, val)
		if err != nil {
			return nil, err
		}
		result[r] = in
	}

	return result, nil
}

// parseSpecialKeySection parses a TOML section of key name → action name bindings
func parseSpecialKeySection(section string, data map[string]any) (map[tcell.Key]Intent, error) {
	result := make(map[tcell.Key]Intent, len(data))

	for keyStr, val := range data {
		k, ok := KeyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[%s] unknown key name: %q", section, keyStr)
		}

		in, err := resolveValue(section, keyStr, val)
		if err != nil {
			return nil, err
		}
		result[k] = in
	}

	return result, nil
}

func resolveValue(section, key string, val any) (Intent, error) {
	actionName, ok := val.(string)
	if !ok {
		return Intent{}, fmt.Errorf("[%s] key %q: value must be string, got %T", section, key, val)
	}
	in, err := resolveAction(actionName)
	if err != nil {
		return Intent{}, fmt.Errorf("[%s] key %q: %w", section, key, err)
	}
	return in, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// resolveAction converts an action name string to an Intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	in, ok := ActionEntry(name)
	if !ok {
		return Intent{}, fmt.Errorf("unknown action: %q", name)
	}
	return in, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Keys, override.Keys)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v.Type == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
