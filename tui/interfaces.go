// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with fakes

package tui

import (
	"time"

	"sonido/config"
	"sonido/player"
	"sonido/playlist"
)

// Engine is the playback engine driven by the event loop
type Engine interface {
	Load(track playlist.Track) error
	Play()
	Pause()
	Toggle()
	Seek(direction int) player.Event
	Tick(elapsed time.Duration) player.Event
	Rewind()
	Stop()
	SetSeekStep(d time.Duration)
	VolumeUp()
	VolumeDown()
	Progress() player.Progress
	Close() error
}

// ConfigLoader reads settings from disk, returning an error alongside
// fallback settings when the file cannot be used
type ConfigLoader func(path string) (config.Settings, error)
