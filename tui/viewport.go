// ABOUTME: Scroll offset calculation for the playlist panel
// ABOUTME: Keeps the current track centered once it passes the middle row

package tui

// scrollOffset returns the first visible row for a list of total rows shown
// in a window of height rows, with the selected row kept in view.
//
// Scrolling behavior:
// - top: the selection moves, the window stays at 0
// - middle: the selection stays on the middle row, content scrolls
// - bottom: the window shows the last rows, the selection moves down
func scrollOffset(height, selected, total int) int {
	if total <= height || height < 1 || selected < 0 {
		return 0
	}

	middle := height / 2
	if selected < middle {
		return 0
	}

	maxOffset := total - height
	if offset := selected - middle; offset < maxOffset {
		return offset
	}

	return maxOffset
}
