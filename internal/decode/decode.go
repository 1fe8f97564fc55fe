package decode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrDecode tags every failure surfaced by this package so callers can treat
// unreadable files uniformly.
var ErrDecode = errors.New("decode error")

// Info describes an audio file from its container headers.
type Info struct {
	Channels    int
	SampleRate  int
	TotalFrames int64
	BitDepth    int
}

// Duration derives the play time from the frame count and sample rate.
func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	seconds := float64(i.TotalFrames) / float64(i.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// Audio carries decoded per-channel sample data alongside the header info.
// Samples[c][n] is sample n of channel c, normalized to [-1, 1].
type Audio struct {
	Info    Info
	Samples [][]float64
}

// Probe reads only the container headers of the file at path.
func Probe(path string) (Info, error) {
	file, format, err := open(path)
	if err != nil {
		return Info{}, err
	}
	defer file.Close()

	switch format {
	case ".wav":
		return probeWAV(file)
	case ".flac":
		return probeFLAC(file)
	default:
		return Info{}, fmt.Errorf("%w: %s: unsupported audio format %q", ErrDecode, filepath.Base(path), format)
	}
}

// ReadFile decodes the whole file into per-channel sample buffers.
func ReadFile(path string) (*Audio, error) {
	file, format, err := open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch format {
	case ".wav":
		return readWAV(file)
	case ".flac":
		return readFLAC(file)
	default:
		return nil, fmt.Errorf("%w: %s: unsupported audio format %q", ErrDecode, filepath.Base(path), format)
	}
}

func open(path string) (*os.File, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return file, strings.ToLower(filepath.Ext(path)), nil
}

func decodeErr(file *os.File, context string, err error) error {
	name := filepath.Base(file.Name())
	if err != nil {
		return fmt.Errorf("%w: %s: %s: %v", ErrDecode, name, context, err)
	}
	return fmt.Errorf("%w: %s: %s", ErrDecode, name, context)
}

// sampleDivisor converts integer PCM samples of the given bit depth to the
// [-1, 1] float range.
func sampleDivisor(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// deinterleave splits channel-interleaved normalized samples into per-channel
// buffers. Trailing partial frames are dropped.
func deinterleave(samples []float64, channels int) [][]float64 {
	if channels <= 0 {
		return nil
	}
	frames := len(samples) / channels
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, frames)
	}
	for n := 0; n < frames; n++ {
		base := n * channels
		for c := 0; c < channels; c++ {
			out[c][n] = samples[base+c]
		}
	}
	return out
}
