// ABOUTME: Shared fakes for TUI tests
// ABOUTME: In-memory decoder and audio output driving a real playback engine

package tui

import (
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gopxl/beep/v2"

	"sonido/config"
	"sonido/player"
	"sonido/playlist"
)

const testRate beep.SampleRate = 1000

// silentStream is a seekable stream of silence
type silentStream struct {
	length int
	pos    int
}

func (s *silentStream) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.length {
		return 0, false
	}
	n := min(len(samples), s.length-s.pos)
	for i := range samples[:n] {
		samples[i] = [2]float64{}
	}
	s.pos += n
	return n, true
}

func (s *silentStream) Err() error    { return nil }
func (s *silentStream) Len() int      { return s.length }
func (s *silentStream) Position() int { return s.pos }
func (s *silentStream) Close() error  { return nil }

func (s *silentStream) Seek(p int) error {
	if p < 0 || p > s.length {
		return errors.New("seek out of range")
	}
	s.pos = p
	return nil
}

// mapDecoder decodes paths listed in lengths and fails for everything else
type mapDecoder map[string]time.Duration

func (d mapDecoder) Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	length, ok := d[path]
	if !ok {
		return nil, beep.Format{}, &player.DecodeError{Path: path, Err: errors.New("corrupt file")}
	}

	return &silentStream{length: testRate.N(length)}, beep.Format{SampleRate: testRate, NumChannels: 2, Precision: 2}, nil
}

// nullOutput accepts streamers without playing them
type nullOutput struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	closes int
}

func (o *nullOutput) SampleRate() beep.SampleRate { return o.rate }
func (o *nullOutput) Play(beep.Streamer) error    { return nil }
func (o *nullOutput) Clear()                      {}
func (o *nullOutput) Lock()                       { o.mu.Lock() }
func (o *nullOutput) Unlock()                     { o.mu.Unlock() }

func (o *nullOutput) Close() error {
	o.closes++
	return nil
}

func tracksFor(paths ...string) []playlist.Track {
	tracks := make([]playlist.Track, len(paths))
	for i, p := range paths {
		tracks[i] = playlist.Track{Path: p, Title: p}
	}
	return tracks
}

// newTestModel builds a started model over paths with a fake decoder
func newTestModel(t *testing.T, lengths map[string]time.Duration, paths ...string) (model, *nullOutput) {
	t.Helper()

	m, out := newUnstartedModel(lengths, config.DefaultConfig(), paths...)
	if err := m.start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	return m, out
}

func newUnstartedModel(lengths map[string]time.Duration, settings config.Settings, paths ...string) (model, *nullOutput) {
	out := &nullOutput{rate: testRate}

	m := newModel(Options{
		Tracks:   tracksFor(paths...),
		Engine:   player.New(out, mapDecoder(lengths), nil),
		Settings: settings,
		Version:  "test",
	})

	// Keys never move the clock; only advance does
	frozen := m.lastTick
	m.now = func() time.Time { return frozen }

	return m, out
}

// press delivers a key identified by its Bubble Tea string
func press(t *testing.T, m model, k string) (model, tea.Cmd) {
	t.Helper()

	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}

	if msg.String() != k {
		t.Fatalf("Key message renders as %q, want %q", msg.String(), k)
	}

	return send(t, m, msg)
}

// advance delivers a tick d after the previous one
func advance(t *testing.T, m model, d time.Duration) model {
	t.Helper()

	next, _ := m.Update(tickMsg(m.lastTick.Add(d)))
	return next.(model)
}

// send delivers a message and returns the updated model and command
func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	return next.(model), cmd
}

func currentPath(m model) string {
	track, ok := m.playlist.Current()
	if !ok {
		return ""
	}
	return track.Path
}
