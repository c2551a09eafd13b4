// ABOUTME: Tests for playlist navigation, hiding and repeat
// ABOUTME: Verifies wrap-around, hidden track exclusion and the empty state

package playlist

import (
	"fmt"
	"testing"
)

// createTestTracks creates sample tracks for testing
func createTestTracks(count int) []Track {
	tracks := make([]Track, count)
	for i := range tracks {
		tracks[i] = Track{
			Path:   fmt.Sprintf("/music/%02d.mp3", i),
			Title:  string(rune('A' + i)),
			Artist: "Test Artist",
		}
	}

	return tracks
}

func currentPath(t *testing.T, p *Playlist) string {
	t.Helper()

	track, ok := p.Current()
	if !ok {
		t.Fatal("Expected a current track, got none")
	}

	return track.Path
}

func TestNewPlaylistSelectsFirst(t *testing.T) {
	p := New(createTestTracks(3))

	if p.CurrentIndex() != 0 {
		t.Errorf("Expected current index 0, got %d", p.CurrentIndex())
	}

	if p.Len() != 3 {
		t.Errorf("Expected 3 visible tracks, got %d", p.Len())
	}
}

func TestNewEmptyPlaylist(t *testing.T) {
	p := New(nil)

	if _, ok := p.Current(); ok {
		t.Error("Expected no current track for empty playlist")
	}

	if p.CurrentIndex() != -1 {
		t.Errorf("Expected current index -1, got %d", p.CurrentIndex())
	}
}

func TestNextPreviousWrap(t *testing.T) {
	tests := []struct {
		name  string
		moves []int // +1 next, -1 previous
		want  int
	}{
		{"next once", []int{1}, 1},
		{"next wraps", []int{1, 1, 1}, 0},
		{"previous wraps", []int{-1}, 2},
		{"there and back", []int{1, -1}, 0},
		{"previous twice", []int{-1, -1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(createTestTracks(3))

			for _, move := range tt.moves {
				var changed bool
				if move > 0 {
					changed = p.Next()
				} else {
					changed = p.Previous()
				}

				if !changed {
					t.Fatal("Expected move to change current track")
				}
			}

			if p.CurrentIndex() != tt.want {
				t.Errorf("Expected current index %d, got %d", tt.want, p.CurrentIndex())
			}
		})
	}
}

func TestNextNoOpWithSingleTrack(t *testing.T) {
	p := New(createTestTracks(1))

	if p.Next() || p.Previous() {
		t.Error("Expected navigation to be a no-op with one visible track")
	}

	if p.CurrentIndex() != 0 {
		t.Errorf("Expected current index 0, got %d", p.CurrentIndex())
	}
}

func TestAdvanceStopsAtEnd(t *testing.T) {
	p := New(createTestTracks(2))

	if !p.Advance() {
		t.Fatal("Expected advance from first track to succeed")
	}

	if p.Advance() {
		t.Error("Expected advance from last track to fail")
	}

	if p.CurrentIndex() != 1 {
		t.Errorf("Expected to stay on last track, got index %d", p.CurrentIndex())
	}
}

func TestHideCurrent(t *testing.T) {
	tracks := createTestTracks(4)
	p := New(tracks)
	p.Next() // current = 01

	if !p.HideCurrent() {
		t.Fatal("Expected hide to change current track")
	}

	if p.Len() != 3 {
		t.Errorf("Expected 3 visible tracks after hide, got %d", p.Len())
	}

	if got := currentPath(t, p); got != tracks[2].Path {
		t.Errorf("Expected following track %s to be current, got %s", tracks[2].Path, got)
	}

	// The hidden track never comes back through navigation
	for range 10 {
		p.Next()

		if currentPath(t, p) == tracks[1].Path {
			t.Fatal("Hidden track returned by Next")
		}
	}

	for range 10 {
		p.Previous()

		if currentPath(t, p) == tracks[1].Path {
			t.Fatal("Hidden track returned by Previous")
		}
	}

	for _, track := range p.Visible() {
		if track.Path == tracks[1].Path {
			t.Error("Hidden track present in visible list")
		}
	}
}

func TestHideLastPositionWraps(t *testing.T) {
	tracks := createTestTracks(3)
	p := New(tracks)
	p.Previous() // current = 02, the last one

	p.HideCurrent()

	if got := currentPath(t, p); got != tracks[0].Path {
		t.Errorf("Expected wrap to first track, got %s", got)
	}
}

func TestHideAllTracks(t *testing.T) {
	p := New(createTestTracks(3))

	for range 3 {
		if !p.HideCurrent() {
			t.Fatal("Expected hide to succeed")
		}
	}

	if _, ok := p.Current(); ok {
		t.Error("Expected no current track after hiding everything")
	}

	if p.CurrentIndex() != -1 {
		t.Errorf("Expected current index -1, got %d", p.CurrentIndex())
	}

	if p.HideCurrent() {
		t.Error("Expected hide on empty playlist to be a no-op")
	}

	if p.Next() || p.Previous() || p.Advance() {
		t.Error("Expected navigation on empty playlist to be a no-op")
	}
}

func TestHideWithRepeatOnLastTrack(t *testing.T) {
	p := New(createTestTracks(1))
	p.ToggleRepeat()

	p.HideCurrent()

	if _, ok := p.Current(); ok {
		t.Error("Expected no current track, repeat has nothing to repeat")
	}
}

func TestToggleRepeat(t *testing.T) {
	p := New(createTestTracks(2))

	if p.Repeat() {
		t.Fatal("Expected repeat off by default")
	}

	if !p.ToggleRepeat() || !p.Repeat() {
		t.Error("Expected repeat on after first toggle")
	}

	if p.ToggleRepeat() {
		t.Error("Expected repeat off after second toggle")
	}
}

func TestCurrentIndexAlwaysVisible(t *testing.T) {
	p := New(createTestTracks(6))

	ops := []func() bool{p.Next, p.HideCurrent, p.Previous, p.HideCurrent, p.Advance, p.Next, p.HideCurrent}
	for i, op := range ops {
		op()

		if p.Len() == 0 {
			break
		}

		idx := p.CurrentIndex()
		if idx < 0 || idx >= p.Len() {
			t.Fatalf("op %d: current index %d out of range [0,%d)", i, idx, p.Len())
		}

		if _, hidden := p.hidden[p.visible[idx]]; hidden {
			t.Fatalf("op %d: current track %s is hidden", i, currentPath(t, p))
		}
	}
}

func TestHideCurrentKeepsRepeatedEntries(t *testing.T) {
	p := New([]Track{{Path: "a.mp3"}, {Path: "b.mp3"}, {Path: "a.mp3"}})

	p.HideCurrent()

	if p.Len() != 2 {
		t.Fatalf("Expected 2 visible tracks after hiding one copy, got %d", p.Len())
	}

	if got := currentPath(t, p); got != "b.mp3" {
		t.Errorf("Expected current track b.mp3, got %s", got)
	}

	p.Next()

	if got := currentPath(t, p); got != "a.mp3" {
		t.Errorf("Expected the second a.mp3 entry to stay visible, got %s", got)
	}
}
