// ABOUTME: Builds the track catalog from a directory, an audio file or an M3U8 list
// ABOUTME: Filters by audio extension and reads tags in parallel on a worker pool

package playlist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sonido/pool"
)

var (
	// ErrInvalidPath is returned when the music path does not exist or is not usable
	ErrInvalidPath = errors.New("invalid path")

	// ErrNoTracksFound is returned when no audio files were discovered
	ErrNoTracksFound = errors.New("no music files found")
)

// audioExtensions lists the file types offered to the decoder.
// Some of them cannot be decoded and are skipped at load time.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".aac":  true,
	".wav":  true,
	".flac": true,
	".alac": true,
	".aiff": true,
	".aif":  true,
	".m4a":  true,
	".ogg":  true,
}

// IsAudioFile reports whether the path has a known audio extension
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// isPlaylistFile reports whether the path is an M3U/M3U8 track list
func isPlaylistFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return ext == ".m3u" || ext == ".m3u8"
}

// Scan returns candidate audio file paths in discovery order.
// A directory is walked in lexical order (top level only unless recursive),
// an M3U8 file is read line by line and a single audio file is returned as is.
func Scan(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, root, err)
	}

	if !info.IsDir() {
		switch {
		case isPlaylistFile(root):
			return ReadPlaylist(root)
		case IsAudioFile(root):
			return []string{root}, nil
		default:
			return nil, fmt.Errorf("%w: %s is not a directory or audio file", ErrInvalidPath, root)
		}
	}

	var paths []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, the root itself is not
			if path == root {
				return err
			}

			return nil
		}

		if d.IsDir() {
			if path != root && !recursive {
				return fs.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() && IsAudioFile(path) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPath, root, err)
	}

	return paths, nil
}

// ReadPlaylist reads an M3U8 playlist file and returns its audio entries.
// Relative entries are resolved against the playlist's directory.
func ReadPlaylist(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open playlist: %w", err)
	}

	defer func() {
		_ = file.Close() // Explicitly ignore error for read-only file
	}()

	baseDir := filepath.Dir(path)

	var paths []string

	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !filepath.IsAbs(line) {
			line = filepath.Join(baseDir, line)
		}

		if IsAudioFile(line) {
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading playlist: %w", err)
	}

	return paths, nil
}

// DurationFunc reports the total length of an audio file
type DurationFunc func(path string) (time.Duration, error)

// LoadTracks reads metadata for every path, keeping the input order.
// Tag failures degrade to file name metadata and are reported through debugf.
// When duration is non-nil it fills Track.Duration; failures leave it 0.
func LoadTracks(paths []string, duration DurationFunc, debugf func(string, ...interface{})) []Track {
	tracks := make([]Track, len(paths))

	pool.Each(len(paths), 0, func(i int) {
		track, err := GetTrackMetadata(paths[i])
		if err != nil {
			debugf("[CATALOG] Using file name metadata for %s: %v", paths[i], err)
		}

		if duration != nil {
			d, err := duration(paths[i])
			if err != nil {
				debugf("[CATALOG] Unknown length for %s: %v", paths[i], err)
			} else {
				track.Duration = d
			}
		}

		tracks[i] = *track
	})

	return tracks
}

// LoadCatalog scans root and returns the tracks with metadata.
// Returns ErrNoTracksFound when nothing playable-looking was discovered.
func LoadCatalog(root string, recursive bool, duration DurationFunc, debugf func(string, ...interface{})) ([]Track, error) {
	paths, err := Scan(root, recursive)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTracksFound, root)
	}

	debugf("[CATALOG] Found %d audio files under %s (recursive: %v)", len(paths), root, recursive)

	return LoadTracks(paths, duration, debugf), nil
}
