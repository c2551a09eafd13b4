// ABOUTME: Config file watching for hot reload
// ABOUTME: Turns fsnotify events into Bubble Tea messages

package tui

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce lets editors finish writing before the file is read
const reloadDebounce = 100 * time.Millisecond

// newConfigWatcher watches the directory holding the config file, so
// editors that replace the file on save are still seen
func newConfigWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	return watcher, nil
}

// isConfigWrite reports whether event changed the config file contents
func isConfigWrite(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}

	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// waitForConfigChange returns a command that waits for the next config write
func waitForConfigChange(watcher *fsnotify.Watcher, path string, debugf func(string, ...interface{})) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if isConfigWrite(event, path) {
					// Debounce: wait a bit for atomic writes to complete
					time.Sleep(reloadDebounce)
					return configChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				// Log error but continue watching
				debugf("[WATCHER] Error: %v", err)
			}
		}
	}
}
