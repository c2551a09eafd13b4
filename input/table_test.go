// ABOUTME: Tests for key name normalization and binding tables
// ABOUTME: Covers aliases, case folding, unknown names and duplicate keys

package input

import (
	"reflect"
	"testing"

	"sonido/config"
)

func TestKeyIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"space", []string{" ", "space"}},
		{" ", []string{" ", "space"}},
		{"Left", []string{"left"}},
		{"ESC", []string{"esc"}},
		{"escape", []string{"esc"}},
		{"PageUp", []string{"pgup"}},
		{"pgdown", []string{"pgdown"}},
		{"del", []string{"delete"}},
		{"ins", []string{"insert"}},
		{"Q", []string{"q"}},
		{"=", []string{"="}},
		{"ß", []string{"ß"}},
		{"f13", nil},
		{"", nil},
	}

	for _, tt := range tests {
		if got := KeyIdentifiers(tt.name); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("KeyIdentifiers(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNewTableDefaults(t *testing.T) {
	table := NewTable(config.DefaultConfig())

	tests := []struct {
		key  string
		want Action
	}{
		{" ", TogglePlayback},
		{"r", ToggleRepeat},
		{"left", SeekBackward},
		{"right", SeekForward},
		{"up", PreviousTrack},
		{"down", NextTrack},
		{"h", HideTrack},
		{"c", ReloadConfig},
		{"q", Quit},
		{"=", VolumeUp},
		{"-", VolumeDown},
	}

	for _, tt := range tests {
		got, ok := table.Lookup(tt.key)
		if !ok {
			t.Errorf("Expected key %q to be bound", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}

	if _, ok := table.Lookup("z"); ok {
		t.Error("Expected unbound key to resolve to nothing")
	}

	if len(table.Bindings()) != 11 {
		t.Errorf("Expected 11 help bindings, got %d", len(table.Bindings()))
	}
}

func TestNewTableDuplicateKeyFirstWins(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Quit = "r"

	table := NewTable(cfg)

	if got, _ := table.Lookup("r"); got != ToggleRepeat {
		t.Errorf("Expected earlier action to keep the key, got %v", got)
	}
}

func TestNewTableSkipsUnknownNames(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.VolumeUp = "hyper"
	cfg.VolumeDown = ""

	table := NewTable(cfg)

	for _, b := range table.Bindings() {
		if b.Action == VolumeUp || b.Action == VolumeDown {
			t.Errorf("Expected %v to be unbound", b.Action)
		}
	}
}

func TestActionString(t *testing.T) {
	if Quit.String() != "quit" {
		t.Errorf("Expected quit, got %s", Quit.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", Action(99).String())
	}
}
