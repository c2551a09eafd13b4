// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model coordinating the playlist, engine and key dispatch

// Package tui runs the interactive player: the Bubble Tea event loop that
// drives the playback engine and the renderer that draws its state.
package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"sonido/config"
	"sonido/input"
	"sonido/player"
	"sonido/playlist"
)

// ErrNoPlayableTracks is returned when every visible track failed to load
var ErrNoPlayableTracks = errors.New("no playable tracks")

const (
	tickInterval          = 200 * time.Millisecond // Bounded wait between engine updates
	statusMessageDuration = 5 * time.Second        // How long to show transient status messages
)

// tickMsg drives position updates and end-of-track detection
type tickMsg time.Time

// configChangedMsg is sent when the watched config file is written
type configChangedMsg struct{}

// model holds the player session state
type model struct {
	// Dependencies
	engine     Engine
	playlist   *playlist.Playlist
	dispatcher *input.Dispatcher
	loadConfig ConfigLoader
	debugf     func(string, ...interface{})
	now        func() time.Time

	// Configuration
	settings   config.Settings
	display    config.Display
	configPath string
	version    string
	watcher    *fsnotify.Watcher

	// Event loop state
	lastTick time.Time
	failures []error // Track load failures, oldest first
	fatalErr error   // Set when the session must end with an error

	// UI state
	width        int
	height       int
	quitting     bool
	statusMsg    string    // Temporary status message (e.g., "Repeat on")
	statusMsgAge time.Time // When status message was set
}

// Run plays the catalog until the user quits.
// The engine is closed before Run returns.
func Run(opts Options) error {
	m := newModel(opts)
	defer func() {
		if err := m.engine.Close(); err != nil {
			m.debugf("[TUI] Closing audio output: %v", err)
		}
	}()

	if err := m.start(); err != nil {
		return err
	}

	if m.configPath != "" {
		watcher, err := newConfigWatcher(m.configPath)
		if err != nil {
			m.debugf("[WATCHER] Config hot reload disabled: %v", err)
		} else {
			m.watcher = watcher
			defer func() { _ = watcher.Close() }()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := finalModel.(model); ok && fm.fatalErr != nil {
		return fm.fatalErr
	}

	return nil
}

// newModel creates the initial model with injected dependencies
func newModel(opts Options) model {
	debugf := opts.Debugf
	if debugf == nil {
		debugf = func(string, ...interface{}) {}
	}

	loadConfig := opts.LoadConfig
	if loadConfig == nil {
		loadConfig = config.LoadConfig
	}

	m := model{
		engine:     opts.Engine,
		playlist:   playlist.New(opts.Tracks),
		dispatcher: input.NewDispatcher(input.NewTable(opts.Settings)),
		loadConfig: loadConfig,
		debugf:     debugf,
		settings:   opts.Settings,
		display:    opts.Settings.Display(opts.Version),
		configPath: opts.ConfigPath,
		version:    opts.Version,
		now:        time.Now,
	}
	m.lastTick = m.now()

	m.engine.SetSeekStep(opts.Settings.SeekStepDuration())

	if opts.Warning != "" {
		m.setStatusMsg(opts.Warning)
	}

	return m
}

// start loads the first playable track and starts it when autoplay is on.
// Errors returned here end the session before the UI is shown.
func (m *model) start() error {
	if err := m.loadCurrent(true); err != nil {
		return err
	}

	if m.settings.Autoplay {
		m.engine.Play()
	}

	return nil
}

// Init starts the tick loop and the config watcher
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.watcher != nil {
		cmds = append(cmds, waitForConfigChange(m.watcher, m.configPath, m.debugf))
	}

	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// setStatusMsg shows a transient message in the footer
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = m.now()
}

// recordFailure keeps a load failure for the session and surfaces it
func (m *model) recordFailure(err error) {
	m.failures = append(m.failures, err)
	m.debugf("[PLAYER] %v", err)
	m.setStatusMsg("Skipped: " + err.Error())
}

// loadCurrent loads the playlist's current track into the engine, skipping
// tracks that fail to decode. wrap selects wrapping navigation for the skip;
// without it the skip stops at the end of the playlist and playback stops.
// Returns ErrNoPlayableTracks when every visible track failed, or the device
// error when the output fails twice.
func (m *model) loadCurrent(wrap bool) error {
	failed := 0
	deviceFailures := 0

	for {
		track, ok := m.playlist.Current()
		if !ok {
			m.engine.Stop()
			return nil
		}

		err := m.engine.Load(track)
		if err == nil {
			return nil
		}

		m.recordFailure(err)

		var devErr *player.OutputDeviceError
		if errors.As(err, &devErr) {
			deviceFailures++
			if deviceFailures > 1 {
				return err
			}
		}

		failed++
		if failed >= m.playlist.Len() {
			m.engine.Stop()
			return fmt.Errorf("%w: %d of %d tracks failed to load", ErrNoPlayableTracks, failed, m.playlist.Len())
		}

		moved := false
		if wrap {
			moved = m.playlist.Next()
		} else {
			moved = m.playlist.Advance()
		}

		if !moved {
			m.engine.Stop()
			return nil
		}
	}
}

// applySettings swaps in a new settings generation
func (m *model) applySettings(s config.Settings) {
	m.settings = s
	m.display = s.Display(m.version)
	m.dispatcher.Reload(input.NewTable(s))
	m.engine.SetSeekStep(s.SeekStepDuration())
}

// reloadConfig re-reads the config file, keeping the last good settings on error
func (m *model) reloadConfig() {
	if m.configPath == "" {
		return
	}

	settings, err := m.loadConfig(m.configPath)
	if err != nil {
		m.debugf("[CONFIG] Reload failed: %v", err)
		m.setStatusMsg("Config not reloaded: " + err.Error())

		return
	}

	m.applySettings(settings)
	m.debugf("[CONFIG] Reloaded %s", m.configPath)
	m.setStatusMsg("Config reloaded")
}
