// ABOUTME: Player actions that key bindings resolve to
// ABOUTME: Closed set consumed by the event loop

// Package input maps terminal key identifiers to player actions.
package input

// Action is a player command triggered by a key
type Action int

const (
	TogglePlayback Action = iota
	ToggleRepeat
	SeekBackward
	SeekForward
	PreviousTrack
	NextTrack
	HideTrack
	ReloadConfig
	Quit
	VolumeUp
	VolumeDown
)

var actionNames = [...]string{
	TogglePlayback: "toggle playback",
	ToggleRepeat:   "toggle repeat",
	SeekBackward:   "seek backward",
	SeekForward:    "seek forward",
	PreviousTrack:  "previous track",
	NextTrack:      "next track",
	HideTrack:      "hide track",
	ReloadConfig:   "reload config",
	Quit:           "quit",
	VolumeUp:       "volume up",
	VolumeDown:     "volume down",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}

	return actionNames[a]
}
