package decode

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func probeWAV(file *os.File) (Info, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return Info{}, decodeErr(file, "invalid WAV file format", nil)
	}

	if _, err := sampleDivisor(int(decoder.BitDepth)); err != nil {
		return Info{}, decodeErr(file, err.Error(), nil)
	}
	if decoder.NumChans < 1 {
		return Info{}, decodeErr(file, "header reports zero channels", nil)
	}

	// The data chunk length is not exposed before decoding, so the frame
	// count is derived from the file size; the 44-byte header is noise at
	// audio-file sizes.
	stat, err := file.Stat()
	if err != nil {
		return Info{}, decodeErr(file, "stat", err)
	}
	bytesPerFrame := int64(decoder.BitDepth/8) * int64(decoder.NumChans)
	frames := stat.Size() / bytesPerFrame

	return Info{
		Channels:    int(decoder.NumChans),
		SampleRate:  int(decoder.SampleRate),
		TotalFrames: frames,
		BitDepth:    int(decoder.BitDepth),
	}, nil
}

func readWAV(file *os.File) (*Audio, error) {
	decoder := wav.NewDecoder(file)
	decoder.ReadInfo()
	if !decoder.IsValidFile() {
		return nil, decodeErr(file, "invalid WAV file format", nil)
	}

	divisor, err := sampleDivisor(int(decoder.BitDepth))
	if err != nil {
		return nil, decodeErr(file, err.Error(), nil)
	}
	channels := int(decoder.NumChans)
	if channels < 1 {
		return nil, decodeErr(file, "header reports zero channels", nil)
	}

	buf := &audio.IntBuffer{
		Data:   make([]int, 64*1024),
		Format: &audio.Format{SampleRate: int(decoder.SampleRate), NumChannels: channels},
	}

	var interleaved []float64
	for {
		n, err := decoder.PCMBuffer(buf)
		if err != nil {
			return nil, decodeErr(file, "read PCM", err)
		}
		if n == 0 {
			break
		}
		for _, sample := range buf.Data[:n] {
			interleaved = append(interleaved, float64(sample)/divisor)
		}
	}

	samples := deinterleave(interleaved, channels)
	return &Audio{
		Info: Info{
			Channels:    channels,
			SampleRate:  int(decoder.SampleRate),
			TotalFrames: int64(len(samples[0])),
			BitDepth:    int(decoder.BitDepth),
		},
		Samples: samples,
	}, nil
}
