// ABOUTME: Player session inputs assembled by the command line layer
// ABOUTME: Defines the tracks, engine and settings the TUI runs with

package tui

import (
	"sonido/config"
	"sonido/playlist"
)

// Options contains everything needed to run a player session
type Options struct {
	Tracks     []playlist.Track // Catalog in discovery order
	Engine     Engine           // Playback engine, closed when Run returns
	Settings   config.Settings  // Settings loaded at startup
	ConfigPath string           // Config file to reload and watch ("" disables both)
	LoadConfig ConfigLoader     // Defaults to config.LoadConfig
	Version    string
	Warning    string // Shown as the first status message, e.g. a startup config error
	Debugf     func(string, ...interface{})
}
