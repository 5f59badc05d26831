package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Patterns are the file dialog filters for Open.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// Open decodes path by extension. The returned streamer owns the file.
func Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}
