// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and action handlers

package tui

import (
	"runtime/debug"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sonido/input"
	"sonido/player"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] Update panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tickMsg:
		if cmd := m.handleTick(time.Time(msg)); cmd != nil {
			return m, cmd
		}

		return m, tick()

	case configChangedMsg:
		m.debugf("[WATCHER] Config file changed")
		m.reloadConfig()

		if m.watcher != nil {
			return m, waitForConfigChange(m.watcher, m.configPath, m.debugf)
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}

		// Bring the engine up to date so the key acts on the current position
		if cmd := m.handleTick(m.now()); cmd != nil {
			return m, cmd
		}

		action, ok := m.dispatcher.Resolve(msg.String())
		if !ok {
			return m, nil
		}

		m.debugf("[INPUT] %q -> %s", msg.String(), action)

		return m, m.handleAction(action)
	}

	return m, nil
}

// handleTick advances the engine by the wall-clock time since the last tick
func (m *model) handleTick(now time.Time) tea.Cmd {
	elapsed := now.Sub(m.lastTick)
	m.lastTick = now

	if elapsed < 0 {
		elapsed = 0
	}

	if m.engine.Tick(elapsed) == player.TrackEnded {
		return m.handleTrackEnded()
	}

	return nil
}

// handleTrackEnded repeats, advances or stops after the current track finishes
func (m *model) handleTrackEnded() tea.Cmd {
	if m.playlist.Repeat() {
		m.engine.Rewind()
		m.engine.Play()

		return nil
	}

	if !m.playlist.Advance() {
		m.engine.Stop()
		return nil
	}

	return m.loadAndResume(false, true)
}

// loadAndResume loads the current track and starts it when play is set.
// A fatal load error ends the session.
func (m *model) loadAndResume(wrap, play bool) tea.Cmd {
	if err := m.loadCurrent(wrap); err != nil {
		m.fatalErr = err
		return m.quit()
	}

	if play {
		m.engine.Play()
	}

	return nil
}

// handleAction applies one resolved key action
func (m *model) handleAction(action input.Action) tea.Cmd {
	state := m.engine.Progress().State

	switch action {
	case input.TogglePlayback:
		if state == player.Stopped {
			if m.playlist.Len() == 0 {
				return nil
			}

			return m.loadAndResume(true, true)
		}

		m.engine.Toggle()

	case input.ToggleRepeat:
		if m.playlist.ToggleRepeat() {
			m.setStatusMsg("Repeat on")
		} else {
			m.setStatusMsg("Repeat off")
		}

	case input.SeekBackward:
		if m.engine.Seek(-1) == player.TrackEnded {
			return m.handleTrackEnded()
		}

	case input.SeekForward:
		if m.engine.Seek(1) == player.TrackEnded {
			return m.handleTrackEnded()
		}

	case input.PreviousTrack:
		if m.playlist.Previous() && state != player.Stopped {
			return m.loadAndResume(true, state == player.Playing)
		}

	case input.NextTrack:
		if m.playlist.Next() && state != player.Stopped {
			return m.loadAndResume(true, state == player.Playing)
		}

	case input.HideTrack:
		if !m.playlist.HideCurrent() {
			return nil
		}

		if m.playlist.Len() == 0 {
			m.engine.Stop()
			m.setStatusMsg("All tracks hidden")

			return nil
		}

		if state != player.Stopped {
			return m.loadAndResume(true, state == player.Playing)
		}

	case input.ReloadConfig:
		m.reloadConfig()

	case input.Quit:
		return m.quit()

	case input.VolumeUp:
		m.engine.VolumeUp()

	case input.VolumeDown:
		m.engine.VolumeDown()
	}

	return nil
}

// quit releases the audio output and ends the program
func (m *model) quit() tea.Cmd {
	m.quitting = true

	if err := m.engine.Close(); err != nil {
		m.debugf("[TUI] Closing audio output: %v", err)
	}

	return tea.Quit
}
