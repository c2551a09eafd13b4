// ABOUTME: Bubble Tea View() for the player
// ABOUTME: Snapshots the model and hands it to the pure renderer

package tui

import (
	"runtime/debug"
	"time"
)

// View renders the TUI
func (m model) View() string {
	defer func() {
		if r := recover(); r != nil {
			m.debugf("[PANIC] View panic: %v", r)
			m.debugf("[PANIC] Stack trace: %s", string(debug.Stack()))
			panic(r) // Re-panic so Bubble Tea can handle it
		}
	}()

	if m.quitting {
		return ""
	}

	return renderFrame(m.snapshot(time.Now()), m.width, m.height)
}
