// ABOUTME: Immutable key binding table built from config settings
// ABOUTME: Normalizes config key names to Bubble Tea key identifiers

package input

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"

	"sonido/config"
)

// keyAliases maps config key names to the identifiers Bubble Tea reports
var keyAliases = map[string][]string{
	"space":     {" ", "space"},
	"left":      {"left"},
	"right":     {"right"},
	"up":        {"up"},
	"down":      {"down"},
	"esc":       {"esc"},
	"escape":    {"esc"},
	"tab":       {"tab"},
	"backspace": {"backspace"},
	"enter":     {"enter"},
	"insert":    {"insert"},
	"ins":       {"insert"},
	"delete":    {"delete"},
	"del":       {"delete"},
	"home":      {"home"},
	"end":       {"end"},
	"pageup":    {"pgup"},
	"pgup":      {"pgup"},
	"pagedown":  {"pgdown"},
	"pgdown":    {"pgdown"},
}

// KeyIdentifiers returns the Bubble Tea key strings for a config key name.
// Names are case-insensitive; unknown multi-character names return nil.
func KeyIdentifiers(name string) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		if name == " " {
			return keyAliases["space"]
		}
		return nil
	}

	lower := strings.ToLower(trimmed)
	if ids, ok := keyAliases[lower]; ok {
		return ids
	}

	if utf8.RuneCountInString(lower) == 1 {
		return []string{lower}
	}

	return nil
}

// Binding pairs an action with its help entry
type Binding struct {
	Action Action
	Key    key.Binding
}

// Table is an immutable key identifier to action map.
// It is never modified after NewTable returns.
type Table struct {
	actions  map[string]Action
	bindings []Binding
}

// NewTable builds a table from the key fields of settings.
// When two actions share a key the one listed first wins.
func NewTable(s config.Settings) *Table {
	entries := []struct {
		action Action
		name   string
	}{
		{TogglePlayback, s.TogglePlayback},
		{ToggleRepeat, s.ToggleRepeat},
		{SeekBackward, s.SeekBackward},
		{SeekForward, s.SeekForward},
		{PreviousTrack, s.PreviousTrack},
		{NextTrack, s.NextTrack},
		{HideTrack, s.HideTrack},
		{ReloadConfig, s.ReloadConfig},
		{Quit, s.Quit},
		{VolumeUp, s.VolumeUp},
		{VolumeDown, s.VolumeDown},
	}

	t := &Table{actions: make(map[string]Action)}
	for _, e := range entries {
		ids := KeyIdentifiers(e.name)
		if len(ids) == 0 {
			continue
		}

		for _, id := range ids {
			if _, taken := t.actions[id]; !taken {
				t.actions[id] = e.action
			}
		}

		t.bindings = append(t.bindings, Binding{
			Action: e.action,
			Key: key.NewBinding(
				key.WithKeys(ids...),
				key.WithHelp(strings.ToLower(strings.TrimSpace(e.name)), e.action.String()),
			),
		})
	}

	return t
}

// Lookup returns the action bound to a key identifier
func (t *Table) Lookup(id string) (Action, bool) {
	a, ok := t.actions[id]
	return a, ok
}

// Bindings returns the help entries in declaration order
func (t *Table) Bindings() []Binding {
	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// Len returns the number of bound key identifiers
func (t *Table) Len() int {
	return len(t.actions)
}
