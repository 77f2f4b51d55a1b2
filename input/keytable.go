package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/particle-field/engine"
)

// Rune aliases for keys that can't be written as a bare character in YAML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named non-printable keys
var specialKeyNames = map[string]engine.Key{
	"esc":    engine.KeyEscape,
	"escape": engine.KeyEscape,
	"ctrl+c": engine.KeyCtrlC,
}

// KeyTable maps key presses to intents
type KeyTable struct {
	Runes map[rune]Intent
	Keys  map[engine.Key]Intent
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Intent{
			'q': IntentQuit,
			'a': IntentAttractLock,
			't': IntentCycleTheme,
			'm': IntentToggleMute,
			's': IntentToggleStats,
			'l': IntentToggleLinks,
			'c': IntentClearBursts,
			' ': IntentBurstAtCursor,
		},
		Keys: map[engine.Key]Intent{
			engine.KeyEscape: IntentQuit,
			engine.KeyCtrlC:  IntentQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]Intent, len(kt.Runes)),
		Keys:  make(map[engine.Key]Intent, len(kt.Keys)),
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	return c
}

// Lookup returns the intent of a KeyDown event
func (kt *KeyTable) Lookup(ev engine.Event) Intent {
	if ev.Kind != engine.EventKeyDown {
		return IntentNone
	}
	if ev.Key == engine.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.Keys[ev.Key]
}

// WithOverrides returns a copy of kt with key name → intent name bindings applied
// Binding a key to "none" removes it
func (kt *KeyTable) WithOverrides(overrides map[string]string) (*KeyTable, error) {
	result := kt.Clone()
	for keyStr, action := range overrides {
		intent, ok := IntentByName(strings.ToLower(strings.TrimSpace(action)))
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, action)
		}

		if k, ok := specialKeyNames[strings.ToLower(keyStr)]; ok {
			if intent == IntentNone {
				delete(result.Keys, k)
			} else {
				result.Keys[k] = intent
			}
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		if intent == IntentNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = intent
		}
	}
	return result, nil
}

// resolveRune accepts single characters and named aliases
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
