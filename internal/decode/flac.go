package decode

import (
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/tphakala/flac"
)

func probeFLAC(file *os.File) (Info, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return Info{}, decodeErr(file, "open FLAC stream", err)
	}
	if _, err := sampleDivisor(decoder.BitsPerSample); err != nil {
		return Info{}, decodeErr(file, err.Error(), nil)
	}
	return Info{
		Channels:    decoder.NChannels,
		SampleRate:  decoder.SampleRate,
		TotalFrames: int64(decoder.TotalSamples),
		BitDepth:    decoder.BitsPerSample,
	}, nil
}

func readFLAC(file *os.File) (*Audio, error) {
	decoder, err := flac.NewDecoder(file)
	if err != nil {
		return nil, decodeErr(file, "open FLAC stream", err)
	}

	divisor, err := sampleDivisor(decoder.BitsPerSample)
	if err != nil {
		return nil, decodeErr(file, err.Error(), nil)
	}
	channels := decoder.NChannels
	if channels < 1 {
		return nil, decodeErr(file, "stream reports zero channels", nil)
	}
	bytesPerSample := decoder.BitsPerSample / 8

	var interleaved []float64
	for {
		frame, err := decoder.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, decodeErr(file, "read FLAC frame", err)
		}

		stride := bytesPerSample
		for i := 0; i+stride <= len(frame); i += stride {
			var sample int32
			switch decoder.BitsPerSample {
			case 16:
				sample = int32(int16(binary.LittleEndian.Uint16(frame[i:])))
			case 24:
				sample = int32(frame[i]) | int32(frame[i+1])<<8 | int32(frame[i+2])<<16
				if sample&0x800000 != 0 {
					sample |= ^int32(0xffffff)
				}
			case 32:
				sample = int32(binary.LittleEndian.Uint32(frame[i:]))
			}
			interleaved = append(interleaved, float64(sample)/divisor)
		}
	}

	samples := deinterleave(interleaved, channels)
	return &Audio{
		Info: Info{
			Channels:    channels,
			SampleRate:  decoder.SampleRate,
			TotalFrames: int64(len(samples[0])),
			BitDepth:    decoder.BitsPerSample,
		},
		Samples: samples,
	}, nil
}
