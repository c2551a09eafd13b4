// ABOUTME: Ordered playlist view over the catalog with a hidden set and repeat flag
// ABOUTME: Navigation wraps over visible tracks; hidden tracks never come back

// Package playlist discovers audio files, reads their tags and manages the
// ordered, navigable view the player works through.
package playlist

// Playlist is the mutable ordered view over an immutable track catalog.
// It is owned by the event loop and is not safe for concurrent use.
type Playlist struct {
	tracks  []Track
	hidden  map[int]struct{} // indexes into tracks
	visible []int            // indexes into tracks, catalog order
	current int              // index into visible, -1 when empty
	repeat  bool
}

// New creates a playlist over tracks with the first track selected
func New(tracks []Track) *Playlist {
	p := &Playlist{
		tracks:  tracks,
		hidden:  make(map[int]struct{}),
		current: -1,
	}
	p.rebuildVisible()

	if len(p.visible) > 0 {
		p.current = 0
	}

	return p
}

// rebuildVisible recomputes the visible subsequence from the hidden set
func (p *Playlist) rebuildVisible() {
	p.visible = p.visible[:0]

	for i := range p.tracks {
		if _, hidden := p.hidden[i]; !hidden {
			p.visible = append(p.visible, i)
		}
	}
}

// Len returns the number of visible tracks
func (p *Playlist) Len() int {
	return len(p.visible)
}

// Visible returns a copy of the visible tracks in catalog order
func (p *Playlist) Visible() []Track {
	out := make([]Track, len(p.visible))
	for i, idx := range p.visible {
		out[i] = p.tracks[idx]
	}

	return out
}

// CurrentIndex returns the current position in the visible subsequence, or -1
func (p *Playlist) CurrentIndex() int {
	return p.current
}

// Current returns the current track, false when nothing is visible
func (p *Playlist) Current() (Track, bool) {
	if p.current < 0 {
		return Track{}, false
	}

	return p.tracks[p.visible[p.current]], true
}

// Repeat reports whether the current track repeats at its end
func (p *Playlist) Repeat() bool {
	return p.repeat
}

// ToggleRepeat flips the repeat flag and returns the new value
func (p *Playlist) ToggleRepeat() bool {
	p.repeat = !p.repeat

	return p.repeat
}

// Next moves to the next visible track, wrapping at the end.
// Returns true if the current track changed.
func (p *Playlist) Next() bool {
	return p.step(1)
}

// Previous moves to the previous visible track, wrapping at the start.
// Returns true if the current track changed.
func (p *Playlist) Previous() bool {
	return p.step(-1)
}

func (p *Playlist) step(direction int) bool {
	n := len(p.visible)
	if n <= 1 {
		return false
	}

	p.current = ((p.current+direction)%n + n) % n

	return true
}

// Advance moves to the next visible track without wrapping.
// Returns false when the current track is the last one.
func (p *Playlist) Advance() bool {
	if p.current < 0 || p.current+1 >= len(p.visible) {
		return false
	}

	p.current++

	return true
}

// HideCurrent hides the current track for the rest of the session and
// selects the track that followed it (wrapping). Returns true if the current
// track changed, which includes the playlist becoming empty.
func (p *Playlist) HideCurrent() bool {
	if p.current < 0 {
		return false
	}

	pos := p.current
	p.hidden[p.visible[pos]] = struct{}{}
	p.rebuildVisible()

	switch {
	case len(p.visible) == 0:
		p.current = -1
	case pos >= len(p.visible):
		p.current = 0
	default:
		// The following track slid into pos
		p.current = pos
	}

	return true
}
