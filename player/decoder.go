// ABOUTME: Decodes audio files into seekable beep streams
// ABOUTME: Picks the codec by file extension

package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat is wrapped in a DecodeError for extensions with no codec
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Decoder opens a file as a seekable PCM stream
type Decoder interface {
	Decode(path string) (beep.StreamSeekCloser, beep.Format, error)
}

// FileDecoder decodes mp3, flac, wav and ogg vorbis files from disk
type FileDecoder struct{}

// fileStream closes the underlying file together with the decoder
type fileStream struct {
	beep.StreamSeekCloser
	file *os.File
}

func (s *fileStream) Close() error {
	err := s.StreamSeekCloser.Close()
	_ = s.file.Close()
	return err
}

// Decode implements Decoder. Failures are returned as *DecodeError.
func (FileDecoder) Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3", ".flac", ".wav", ".ogg":
	default:
		return nil, beep.Format{}, &DecodeError{Path: path, Err: fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, &DecodeError{Path: path, Err: err}
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	}

	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, &DecodeError{Path: path, Err: err}
	}

	return &fileStream{StreamSeekCloser: stream, file: f}, format, nil
}

// ReadDuration decodes the header of an audio file and returns its length
func ReadDuration(path string) (time.Duration, error) {
	stream, format, err := FileDecoder{}.Decode(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = stream.Close() }()

	return format.SampleRate.D(stream.Len()), nil
}
