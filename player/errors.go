// ABOUTME: Error types reported by the playback engine
// ABOUTME: DecodeError is recoverable, OutputDeviceError usually is not

package player

import (
	"errors"
	"fmt"
)

// ErrOutputClosed is returned when playing through a closed output
var ErrOutputClosed = errors.New("audio output closed")

// DecodeError reports a file that could not be opened or decoded
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// OutputDeviceError reports an audio device that could not be opened or refused a stream
type OutputDeviceError struct {
	Err error
}

func (e *OutputDeviceError) Error() string {
	return fmt.Sprintf("audio output device error: %v", e.Err)
}

func (e *OutputDeviceError) Unwrap() error {
	return e.Err
}
