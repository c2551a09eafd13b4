// ABOUTME: Display settings derived from the config file for the renderer
// ABOUTME: Parses alignment and color names with lenient fallbacks

package config

import "strings"

// Alignment is a panel title position
type Alignment int

// Title alignments, unknown names fall back to AlignLeft
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment maps left/center/right to an Alignment
func ParseAlignment(s string) Alignment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// defaultColor is used for unknown color names
const defaultColor = "4"

// colorCodes maps color names to ANSI palette indexes
var colorCodes = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"grey":         "7",
	"darkgray":     "8",
	"darkgrey":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
}

// ParseColor maps a color name to an ANSI palette index ("4" for unknown names)
func ParseColor(name string) string {
	if code, ok := colorCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}

	return defaultColor
}

// Panel holds the title settings of one bordered panel
type Panel struct {
	Show      bool
	Title     string
	ShowTitle bool
	Alignment Alignment
	Color     string
}

// Display is the immutable renderer configuration for one reload cycle
type Display struct {
	App            Panel
	Playlist       Panel
	Metadata       Panel
	Progress       Panel
	ShowScrollbar  bool
	RoundedCorners bool
}

// Display resolves the renderer settings; version fills {VERSION} placeholders
func (s Settings) Display(version string) Display {
	color := func(name string) string {
		if strings.TrimSpace(name) == "" {
			return ParseColor(s.AccentColor)
		}

		return ParseColor(name)
	}

	format := func(title string) string {
		return strings.ReplaceAll(title, "{VERSION}", version)
	}

	return Display{
		App: Panel{
			Show:      s.ShowAppTitle,
			Title:     format(s.AppTitleFormat),
			ShowTitle: s.ShowAppTitle,
			Alignment: ParseAlignment(s.AppTitleAlignment),
			Color:     color(s.AppTitleColor),
		},
		Playlist: Panel{
			Show:      true,
			Title:     format(s.PlaylistTitleFormat),
			ShowTitle: s.ShowPlaylistTitle,
			Alignment: ParseAlignment(s.PlaylistTitleAlignment),
			Color:     color(s.PlaylistColor),
		},
		Metadata: Panel{
			Show:      s.ShowMetadataPanel,
			Title:     format(s.MetadataTitleFormat),
			ShowTitle: s.ShowMetadataTitle,
			Alignment: ParseAlignment(s.MetadataTitleAlignment),
			Color:     color(s.MetadataColor),
		},
		Progress: Panel{
			Show:      true,
			Title:     format(s.ProgressTitleFormat),
			ShowTitle: s.ShowProgressTitle,
			Alignment: ParseAlignment(s.ProgressTitleAlignment),
			Color:     color(s.ProgressColor),
		},
		ShowScrollbar:  s.ShowPlaylistScrollbar,
		RoundedCorners: s.RoundedCorners,
	}
}
