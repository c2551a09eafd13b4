// ABOUTME: Audio output abstraction and the system speaker implementation
// ABOUTME: The speaker mixes streams on its own goroutine behind a global lock

package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the rate the speaker is opened at; tracks are resampled to it
const DefaultSampleRate beep.SampleRate = 44100

// Output is an audio sink. Streamers passed to Play may only be modified
// between Lock and Unlock.
type Output interface {
	SampleRate() beep.SampleRate
	Play(s beep.Streamer) error
	Clear()
	Lock()
	Unlock()
	Close() error
}

// Speaker plays through the system audio device
type Speaker struct {
	rate beep.SampleRate

	mu     sync.Mutex
	closed bool
}

// OpenSpeaker initializes the system audio device
func OpenSpeaker(rate beep.SampleRate, buffer time.Duration) (*Speaker, error) {
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return nil, &OutputDeviceError{Err: err}
	}

	return &Speaker{rate: rate}, nil
}

func (s *Speaker) SampleRate() beep.SampleRate {
	return s.rate
}

func (s *Speaker) Play(st beep.Streamer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrOutputClosed
	}

	speaker.Play(st)
	return nil
}

func (s *Speaker) Clear() {
	speaker.Clear()
}

func (s *Speaker) Lock() {
	speaker.Lock()
}

func (s *Speaker) Unlock() {
	speaker.Unlock()
}

// Close stops playback and releases the device. Later calls are no-ops.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Clear()
	speaker.Close()
	return nil
}
