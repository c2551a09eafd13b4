// ABOUTME: Pure frame rendering from a Snapshot
// ABOUTME: Draws the titled panels, playlist, metadata, progress bar and footer

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sonido/config"
	"sonido/player"
	"sonido/playlist"
)

// Layout constants for UI dimensions
const (
	defaultWidth  = 80 // Used before the first WindowSizeMsg
	defaultHeight = 24

	minFrameWidth  = 30
	minFrameHeight = 10

	progressHeight = 3 // Progress panel including its border
	footerHeight   = 1 // Status or help line

	minMetadataWidth = 28
)

var labelStyle = lipgloss.NewStyle().Bold(true)

// renderFrame draws one full frame. It depends only on its arguments.
func renderFrame(s Snapshot, width, height int) string {
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	if width < minFrameWidth || height < minFrameHeight {
		return truncate("Terminal too small", width)
	}

	innerW, innerH := width, height
	if s.Display.App.Show {
		innerW -= 2
		innerH -= 2
	}

	mainH := innerH - progressHeight - footerHeight

	var main string
	if s.Display.Metadata.Show {
		metaW := innerW / 3
		if metaW < minMetadataWidth {
			metaW = minMetadataWidth
		}
		if metaW > innerW/2 {
			metaW = innerW / 2
		}

		main = lipgloss.JoinHorizontal(lipgloss.Top,
			renderPlaylist(s, innerW-metaW, mainH),
			renderMetadata(s, metaW, mainH),
		)
	} else {
		main = renderPlaylist(s, innerW, mainH)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		main,
		renderProgress(s, innerW, progressHeight),
		renderFooter(s, innerW),
	)

	if s.Display.App.Show {
		return panel(s.Display.App, body, width, height, s.Display.RoundedCorners)
	}

	return body
}

// panel draws body inside a border whose top edge carries the panel title
func panel(p config.Panel, body string, width, height int, rounded bool) string {
	border := lipgloss.NormalBorder()
	if rounded {
		border = lipgloss.RoundedBorder()
	}

	innerW := max(width-2, 0)
	innerH := max(height-2, 0)
	color := lipgloss.Color(p.Color)

	box := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(color).
		Width(innerW).
		Height(innerH).
		Render(limitLines(body, innerH))

	title := ""
	if p.ShowTitle {
		title = p.Title
	}

	top := lipgloss.NewStyle().Foreground(color).Render(topBorder(border, title, p.Alignment, width))

	return top + "\n" + box
}

// topBorder builds the top edge of a panel with title placed by alignment
func topBorder(b lipgloss.Border, title string, align config.Alignment, width int) string {
	inner := width - 2
	if inner < 0 {
		inner = 0
	}

	title = truncate(title, inner)
	pad := inner - runewidth.StringWidth(title)

	left := 0
	switch align {
	case config.AlignCenter:
		left = pad / 2
	case config.AlignRight:
		left = pad - min(1, pad)
	default:
		left = min(1, pad)
	}

	return b.TopLeft +
		strings.Repeat(b.Top, left) +
		title +
		strings.Repeat(b.Top, pad-left) +
		b.TopRight
}

// limitLines keeps at most n lines of s
func limitLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}

	return strings.Join(lines, "\n")
}

// stateMarker prefixes the current track in the playlist
func stateMarker(state player.State) string {
	switch state {
	case player.Playing:
		return "▶ "
	case player.Paused:
		return "▷ "
	default:
		return "■ "
	}
}

// trackLabel is the playlist line text for t
func trackLabel(t playlist.Track) string {
	if t.Artist != "" {
		return t.Artist + " - " + t.DisplayTitle()
	}

	return t.DisplayTitle()
}

func renderPlaylist(s Snapshot, width, height int) string {
	cw := max(width-2, 1)
	ch := max(height-2, 1)

	scrollbar := s.Display.ShowScrollbar && len(s.Tracks) > ch && cw > 1
	if scrollbar {
		cw--
	}

	color := lipgloss.Color(s.Display.Playlist.Color)
	currentStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	lines := make([]string, 0, len(s.Tracks))
	for i, t := range s.Tracks {
		marker := "  "
		if i == s.Current {
			marker = stateMarker(s.Progress.State)
		}

		line := truncate(fmt.Sprintf("%s%d. %s", marker, i+1, trackLabel(t)), cw)
		if i == s.Current {
			line = currentStyle.Render(padRight(line, cw))
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		lines = append(lines, truncate("No tracks", cw))
	}

	offset := scrollOffset(ch, s.Current, len(lines))

	vp := viewport.New(cw, ch)
	vp.SetContent(strings.Join(lines, "\n"))
	vp.SetYOffset(offset)

	content := vp.View()
	if scrollbar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, renderScrollbar(ch, offset, len(lines), color))
	}

	return panel(s.Display.Playlist, content, width, height, s.Display.RoundedCorners)
}

// renderScrollbar draws a one-column track with a thumb sized to the visible share
func renderScrollbar(height, offset, total int, color lipgloss.Color) string {
	thumb := max(height*height/total, 1)

	pos := 0
	if maxOffset := total - height; maxOffset > 0 {
		pos = offset * (height - thumb) / maxOffset
	}

	thumbStyle := lipgloss.NewStyle().Foreground(color)

	rows := make([]string, height)
	for i := range rows {
		if i >= pos && i < pos+thumb {
			rows[i] = thumbStyle.Render("┃")
		} else {
			rows[i] = "│"
		}
	}

	return strings.Join(rows, "\n")
}

// channelLabel names a channel count
func channelLabel(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "Mono"
	case 2:
		return "Stereo"
	default:
		return strconv.Itoa(n) + " channels"
	}
}

func renderMetadata(s Snapshot, width, height int) string {
	cw := max(width-2, 1)

	t, ok := s.CurrentTrack()

	var rows [][2]string
	if ok {
		loaded := s.Progress.Path == t.Path

		duration, sampleRate, channels := "", "", ""
		if loaded {
			duration = formatDuration(s.Progress.Duration)
			if s.Progress.SampleRate > 0 {
				sampleRate = fmt.Sprintf("%d Hz", s.Progress.SampleRate)
			}
			channels = channelLabel(s.Progress.Channels)
		} else if t.Duration > 0 {
			duration = formatDuration(t.Duration)
		}

		year, number := "", ""
		if t.Year > 0 {
			year = strconv.Itoa(t.Year)
		}
		if t.TrackNumber > 0 {
			number = strconv.Itoa(t.TrackNumber)
		}

		rows = [][2]string{
			{"Title", t.DisplayTitle()},
			{"Artist", t.Artist},
			{"Duration", duration},
			{"Album", t.Album},
			{"Year", year},
			{"Genre", t.Genre},
			{"Track", number},
			{"Sample Rate", sampleRate},
			{"Channels", channels},
		}
	}

	rowStyle := labelStyle.Foreground(lipgloss.Color(s.Display.Metadata.Color))

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = "-"
		}

		label := row[0] + ": "
		lw := runewidth.StringWidth(label)
		if lw >= cw {
			lines = append(lines, rowStyle.Render(truncate(label, cw)))
			continue
		}

		lines = append(lines, rowStyle.Render(label)+truncate(value, cw-lw))
	}

	if len(lines) == 0 {
		lines = append(lines, truncate("Nothing selected", cw))
	}

	return panel(s.Display.Metadata, strings.Join(lines, "\n"), width, height, s.Display.RoundedCorners)
}

func renderProgress(s Snapshot, width, height int) string {
	cw := max(width-2, 1)

	prefix := stateMarker(s.Progress.State)

	suffix := fmt.Sprintf(" %s / %s", formatDuration(s.Progress.Position), formatDuration(s.Progress.Duration))
	if s.Repeat {
		suffix += "  repeat"
	}
	suffix += fmt.Sprintf("  vol %d%%", s.Progress.VolumePercent())

	barW := cw - runewidth.StringWidth(prefix) - runewidth.StringWidth(suffix)

	line := prefix + suffix
	if barW >= 5 {
		ratio := 0.0
		if s.Progress.Duration > 0 {
			ratio = float64(s.Progress.Position) / float64(s.Progress.Duration)
		}

		bar := progress.New(
			progress.WithSolidFill(s.Display.Progress.Color),
			progress.WithoutPercentage(),
			progress.WithWidth(barW),
		)
		line = prefix + bar.ViewAs(ratio) + suffix
	} else {
		line = truncate(line, cw)
	}

	return panel(s.Display.Progress, line, width, height, s.Display.RoundedCorners)
}

func renderFooter(s Snapshot, width int) string {
	if s.Status != "" {
		return truncate(s.Status, width)
	}

	h := help.New()
	h.Width = width

	return h.ShortHelpView(s.Keys)
}
