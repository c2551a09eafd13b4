// ABOUTME: Configuration management for key bindings and display settings
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

// Package config loads the player's TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// ParseError reports a config file that exists but cannot be used.
// Callers keep their last known good settings when they see it.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// File is the on-disk layout, settings live under a [config] table
type File struct {
	Config Settings `toml:"config"`
}

// Settings holds every recognized config key
type Settings struct {
	// Key bindings
	TogglePlayback string `toml:"toggle_playback"`
	ToggleRepeat   string `toml:"toggle_repeat"`
	SeekBackward   string `toml:"seek_backward"`
	SeekForward    string `toml:"seek_forward"`
	PreviousTrack  string `toml:"previous_track"`
	NextTrack      string `toml:"next_track"`
	HideTrack      string `toml:"hide_track"`
	ReloadConfig   string `toml:"reload_config"`
	Quit           string `toml:"quit"`
	VolumeUp       string `toml:"volume_up"`
	VolumeDown     string `toml:"volume_down"`

	// Playback
	SeekStep int  `toml:"seek_step"` // seconds
	Autoplay bool `toml:"autoplay"`

	// Display toggles
	ShowAppTitle          bool `toml:"show_app_title"`
	ShowPlaylistTitle     bool `toml:"show_playlist_title"`
	ShowPlaylistScrollbar bool `toml:"show_playlist_scrollbar"`
	ShowMetadataTitle     bool `toml:"show_metadata_title"`
	ShowMetadataPanel     bool `toml:"show_metadata_panel"`
	ShowProgressTitle     bool `toml:"show_progress_title"`

	// Titles ({VERSION} is replaced in the app title)
	AppTitleFormat      string `toml:"app_title_format"`
	PlaylistTitleFormat string `toml:"playlist_title_format"`
	MetadataTitleFormat string `toml:"metadata_title_format"`
	ProgressTitleFormat string `toml:"progress_title_format"`

	AppTitleAlignment      string `toml:"app_title_alignment"`
	PlaylistTitleAlignment string `toml:"playlist_title_alignment"`
	MetadataTitleAlignment string `toml:"metadata_title_alignment"`
	ProgressTitleAlignment string `toml:"progress_title_alignment"`

	// Colors (empty panel colors use accent_color)
	AccentColor   string `toml:"accent_color"`
	AppTitleColor string `toml:"app_title_color"`
	PlaylistColor string `toml:"playlist_color"`
	MetadataColor string `toml:"metadata_color"`
	ProgressColor string `toml:"progress_color"`

	RoundedCorners bool `toml:"rounded_corners"`
}

// DefaultConfig returns the settings written on first run
func DefaultConfig() Settings {
	return Settings{
		TogglePlayback: "space",
		ToggleRepeat:   "r",
		SeekBackward:   "left",
		SeekForward:    "right",
		PreviousTrack:  "up",
		NextTrack:      "down",
		HideTrack:      "h",
		ReloadConfig:   "c",
		Quit:           "q",
		VolumeUp:       "=",
		VolumeDown:     "-",

		SeekStep: 5,
		Autoplay: true,

		ShowAppTitle:          true,
		ShowPlaylistTitle:     true,
		ShowPlaylistScrollbar: true,
		ShowMetadataTitle:     true,
		ShowMetadataPanel:     true,
		ShowProgressTitle:     false,

		AppTitleFormat:      "┤ Sonido v{VERSION} ├",
		PlaylistTitleFormat: "┤ Playlist ├",
		MetadataTitleFormat: "┤ Metadata ├",
		ProgressTitleFormat: "┤ Progress ├",

		AppTitleAlignment:      "center",
		PlaylistTitleAlignment: "left",
		MetadataTitleAlignment: "left",
		ProgressTitleAlignment: "left",

		AccentColor: "blue",

		RoundedCorners: true,
	}
}

// GetConfigPath returns the default config file path
// First tries ./sonido.toml, then <user config dir>/sonido/config.toml
func GetConfigPath() string {
	if _, err := os.Stat("./sonido.toml"); err == nil {
		return "./sonido.toml"
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "./sonido.toml"
	}

	return filepath.Join(dir, "sonido", "config.toml")
}

// LoadConfig loads settings from a TOML file.
// A missing file is created with defaults. Keys absent from the file keep
// their default values. On a parse or validation failure the defaults are
// returned together with a *ParseError.
func LoadConfig(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := DefaultConfig()
			if err := SaveConfig(path, defaults); err != nil {
				return defaults, fmt.Errorf("failed to write default config: %w", err)
			}

			return defaults, nil
		}

		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	file := File{Config: DefaultConfig()}
	if err := toml.Unmarshal(data, &file); err != nil {
		return DefaultConfig(), &ParseError{Path: path, Err: err}
	}

	if err := file.Config.Validate(); err != nil {
		return DefaultConfig(), &ParseError{Path: path, Err: err}
	}

	return file.Config, nil
}

// SaveConfig saves settings to a TOML file
func SaveConfig(path string, settings Settings) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(File{Config: settings}); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks values that have no sensible fallback
func (s Settings) Validate() error {
	var errs []error

	if s.SeekStep <= 0 {
		errs = append(errs, fmt.Errorf("seek_step must be positive, got %d", s.SeekStep))
	}

	// A single space is a valid key identifier, so only the empty string is rejected
	bindings := []struct {
		name  string
		value string
	}{
		{"toggle_playback", s.TogglePlayback},
		{"toggle_repeat", s.ToggleRepeat},
		{"seek_backward", s.SeekBackward},
		{"seek_forward", s.SeekForward},
		{"previous_track", s.PreviousTrack},
		{"next_track", s.NextTrack},
		{"hide_track", s.HideTrack},
		{"reload_config", s.ReloadConfig},
		{"quit", s.Quit},
	}
	for _, b := range bindings {
		if b.value == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", b.name))
		}
	}

	return errors.Join(errs...)
}

// SeekStepDuration returns seek_step as a duration
func (s Settings) SeekStepDuration() time.Duration {
	return time.Duration(s.SeekStep) * time.Second
}
