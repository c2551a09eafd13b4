// ABOUTME: Defines Track struct and metadata fetching directly from audio files
// ABOUTME: Reads file tags for title, artist and album with file name fallbacks

package playlist

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// Track represents one playable audio file and its derived metadata
type Track struct {
	Path        string        // Absolute or playlist-relative file path, also the track identity
	Title       string        // Track title (file name fallback)
	Artist      string        // Artist name (empty if unknown)
	Album       string        // Album name (empty if unknown)
	Genre       string        // Genre from tags (empty if not available)
	Year        int           // Release year (0 if not available)
	TrackNumber int           // Position on the album (0 if not available)
	Duration    time.Duration // Total length, read at scan time (0 when unknown)
}

// DisplayTitle returns the title to show in the playlist
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}

	return fileStem(t.Path)
}

// GetTrackMetadata fetches metadata for a track by reading the file directly.
// Missing tag fields are filled from the file name, so a non-nil track is
// returned even when tags cannot be read; the error reports the tag failure.
func GetTrackMetadata(trackPath string) (*Track, error) {
	track := trackFromFileName(trackPath)

	file, err := os.Open(trackPath)
	if err != nil {
		return track, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		return track, fmt.Errorf("failed to read metadata: %w", err)
	}

	if title := strings.TrimSpace(metadata.Title()); title != "" {
		track.Title = title
		// The file name split is only a guess, tags win
		track.Artist = ""
	}

	if artist := strings.TrimSpace(metadata.Artist()); artist != "" {
		track.Artist = artist
	}

	track.Album = strings.TrimSpace(metadata.Album())
	track.Genre = strings.TrimSpace(metadata.Genre())
	track.Year = metadata.Year()
	track.TrackNumber, _ = metadata.Track()

	return track, nil
}

// trackFromFileName builds a track from its file name only
// Example: "Boards of Canada - Roygbiv.mp3" -> artist "Boards of Canada", title "Roygbiv"
func trackFromFileName(trackPath string) *Track {
	stem := fileStem(trackPath)

	if artist, title, ok := strings.Cut(stem, " - "); ok {
		return &Track{Path: trackPath, Title: title, Artist: artist}
	}

	return &Track{Path: trackPath, Title: stem}
}

// fileStem returns the base name without extension
func fileStem(path string) string {
	base := filepath.Base(path)

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "Unknown"
	}

	return stem
}
