// ABOUTME: Immutable view of player state handed to the renderer
// ABOUTME: Built once per frame from the model

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"sonido/config"
	"sonido/player"
	"sonido/playlist"
)

// Snapshot is everything a frame needs; rendering reads nothing else
type Snapshot struct {
	Tracks   []playlist.Track // Visible tracks
	Current  int              // Index into Tracks, -1 when none
	Repeat   bool
	Progress player.Progress
	Display  config.Display
	Keys     []key.Binding // Help entries for the footer
	Status   string        // Transient message, empty when expired
}

// CurrentTrack returns the selected track
func (s Snapshot) CurrentTrack() (playlist.Track, bool) {
	if s.Current < 0 || s.Current >= len(s.Tracks) {
		return playlist.Track{}, false
	}

	return s.Tracks[s.Current], true
}

// snapshot assembles the frame state at now
func (m model) snapshot(now time.Time) Snapshot {
	status := ""
	if m.statusMsg != "" && now.Sub(m.statusMsgAge) < statusMessageDuration {
		status = m.statusMsg
	}

	var keys []key.Binding
	if table := m.dispatcher.Table(); table != nil {
		for _, b := range table.Bindings() {
			keys = append(keys, b.Key)
		}
	}

	return Snapshot{
		Tracks:   m.playlist.Visible(),
		Current:  m.playlist.CurrentIndex(),
		Repeat:   m.playlist.Repeat(),
		Progress: m.engine.Progress(),
		Display:  m.display,
		Keys:     keys,
		Status:   status,
	}
}
