// ABOUTME: Playback engine owning the loaded track and playback state
// ABOUTME: Driven by the event loop through Load/Play/Seek/Tick calls

// Package player decodes tracks and plays them through an audio output.
package player

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"go.uber.org/zap"

	"sonido/playlist"
)

// State is the playback state
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Stopped"
	}
}

// Event is returned by operations that can finish the loaded track
type Event int

const (
	NoEvent Event = iota
	TrackEnded
)

// Volume range in beep's exponential units (base 2)
const (
	minVolume  = -5.0
	maxVolume  = 1.0
	volumeStep = 0.5

	resampleQuality = 4
)

// DefaultSeekStep is used until SetSeekStep is called
const DefaultSeekStep = 5 * time.Second

// Progress is a consistent copy of the engine state
type Progress struct {
	State      State
	Position   time.Duration
	Duration   time.Duration
	Volume     float64
	SeekStep   time.Duration
	Path       string
	SampleRate int
	Channels   int
}

// VolumePercent maps the volume level onto 0-100
func (p Progress) VolumePercent() int {
	return int((p.Volume - minVolume) / (maxVolume - minVolume) * 100)
}

// Engine plays one track at a time. All methods are safe for concurrent use;
// streamers shared with the output are only touched under the output lock.
type Engine struct {
	out Output
	dec Decoder
	log *zap.Logger

	mu       sync.Mutex
	state    State
	path     string
	stream   beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	position time.Duration
	duration time.Duration
	seekStep time.Duration
	level    float64
	closed   bool
}

// New returns a stopped engine. A nil logger disables logging.
func New(out Output, dec Decoder, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		out:      out,
		dec:      dec,
		log:      log,
		seekStep: DefaultSeekStep,
	}
}

// Load decodes a track and leaves it Paused at position 0.
// Any previously loaded track is released first. On failure the engine is
// Stopped with nothing loaded.
func (e *Engine) Load(track playlist.Track) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.unloadLocked()

	if e.closed {
		return &OutputDeviceError{Err: ErrOutputClosed}
	}

	stream, format, err := e.dec.Decode(track.Path)
	if err != nil {
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			err = &DecodeError{Path: track.Path, Err: err}
		}
		e.log.Debug("decode failed", zap.String("path", track.Path), zap.Error(err))
		return err
	}

	e.stream = stream
	e.format = format
	e.path = track.Path
	e.position = 0
	e.duration = format.SampleRate.D(stream.Len())
	if e.duration <= 0 {
		e.duration = track.Duration
	}
	e.state = Paused

	if err := e.attachLocked(); err != nil {
		e.unloadLocked()
		return &OutputDeviceError{Err: err}
	}

	e.log.Debug("loaded track",
		zap.String("path", track.Path),
		zap.Duration("duration", e.duration),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Int("channels", format.NumChannels))

	return nil
}

// attachLocked hands a fresh streamer chain for the loaded stream to the output
func (e *Engine) attachLocked() error {
	var s beep.Streamer = e.stream
	if rate := e.out.SampleRate(); rate != e.format.SampleRate {
		s = beep.Resample(resampleQuality, e.format.SampleRate, rate, s)
	}

	e.ctrl = &beep.Ctrl{Streamer: s, Paused: e.state != Playing}
	e.volume = &effects.Volume{
		Streamer: e.ctrl,
		Base:     2,
		Volume:   e.level,
		Silent:   e.level <= minVolume,
	}

	return e.out.Play(e.volume)
}

func (e *Engine) unloadLocked() {
	if e.stream != nil {
		e.out.Clear()
		if err := e.stream.Close(); err != nil {
			e.log.Debug("close stream", zap.String("path", e.path), zap.Error(err))
		}
	}

	e.stream = nil
	e.ctrl = nil
	e.volume = nil
	e.format = beep.Format{}
	e.path = ""
	e.position = 0
	e.duration = 0
	e.state = Stopped
}

// Play resumes a paused track
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Paused {
		return
	}

	e.setPausedLocked(false)
	e.state = Playing
}

// Pause pauses a playing track
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Playing {
		return
	}

	e.setPausedLocked(true)
	e.state = Paused
}

// Toggle switches between Playing and Paused
func (e *Engine) Toggle() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Playing:
		e.setPausedLocked(true)
		e.state = Paused
	case Paused:
		e.setPausedLocked(false)
		e.state = Playing
	}
}

func (e *Engine) setPausedLocked(paused bool) {
	if e.ctrl == nil {
		return
	}

	e.out.Lock()
	e.ctrl.Paused = paused
	e.out.Unlock()
}

// Seek moves the position by one seek step in direction (negative is backward),
// clamped to [0, duration]. Reaching the end returns TrackEnded in any state.
func (e *Engine) Seek(direction int) Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Stopped {
		return NoEvent
	}

	target := e.position + time.Duration(direction)*e.seekStep
	if target < 0 {
		target = 0
	}
	if target > e.duration {
		target = e.duration
	}

	e.position = target
	if target >= e.duration {
		return TrackEnded
	}

	e.repositionLocked(target)
	return NoEvent
}

// repositionLocked seeks the stream and reattaches it, since the output
// drops streamers that have drained.
func (e *Engine) repositionLocked(pos time.Duration) {
	if e.stream == nil {
		return
	}

	e.out.Clear()

	n := e.format.SampleRate.N(pos)
	if l := e.stream.Len(); n > l {
		n = l
	}
	if err := e.stream.Seek(n); err != nil {
		e.log.Debug("seek failed", zap.String("path", e.path), zap.Error(err))
	}

	if err := e.attachLocked(); err != nil {
		e.log.Debug("reattach failed", zap.String("path", e.path), zap.Error(err))
	}
}

// Tick advances the position by elapsed wall-clock time while Playing
func (e *Engine) Tick(elapsed time.Duration) Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Playing || elapsed <= 0 {
		return NoEvent
	}

	e.position += elapsed
	if e.position >= e.duration {
		e.position = e.duration
		return TrackEnded
	}

	return NoEvent
}

// Rewind restarts the loaded track from 0 keeping the current state
func (e *Engine) Rewind() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Stopped {
		return
	}

	e.position = 0
	e.repositionLocked(0)
}

// Stop unloads the track
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.unloadLocked()
}

// SetSeekStep changes the seek step; non-positive values are ignored
func (e *Engine) SetSeekStep(d time.Duration) {
	if d <= 0 {
		return
	}

	e.mu.Lock()
	e.seekStep = d
	e.mu.Unlock()
}

func (e *Engine) VolumeUp() {
	e.adjustVolume(volumeStep)
}

func (e *Engine) VolumeDown() {
	e.adjustVolume(-volumeStep)
}

func (e *Engine) adjustVolume(delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	level := e.level + delta
	if level < minVolume {
		level = minVolume
	}
	if level > maxVolume {
		level = maxVolume
	}
	e.level = level

	if e.volume == nil {
		return
	}

	e.out.Lock()
	e.volume.Volume = level
	e.volume.Silent = level <= minVolume
	e.out.Unlock()
}

// Progress returns a snapshot taken under one lock
func (e *Engine) Progress() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Progress{
		State:      e.state,
		Position:   e.position,
		Duration:   e.duration,
		Volume:     e.level,
		SeekStep:   e.seekStep,
		Path:       e.path,
		SampleRate: int(e.format.SampleRate),
		Channels:   e.format.NumChannels,
	}
}

// Close unloads the track and closes the output. Later calls are no-ops.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}

	e.unloadLocked()
	e.closed = true
	return e.out.Close()
}
