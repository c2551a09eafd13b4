// ABOUTME: Small text formatting helpers for the renderer
// ABOUTME: Durations as m:ss and width-aware truncation

package tui

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// formatDuration renders d as m:ss, minutes are not wrapped into hours
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int(d / time.Second)

	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// truncate cuts s to at most width terminal cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(s, width, "…")
}

// padRight fills s with spaces up to width cells
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
