package classify

import (
	"fmt"
	"math"
)

// DefaultCorrelationThreshold is the Pearson correlation above which two
// stereo channels are considered duplicates of each other.
const DefaultCorrelationThreshold = 0.98

// Type identifies the channel layout of an audio file.
type Type int

const (
	Unknown Type = iota
	Mono
	Stereo
	FakeStereo
	Surround51
	Surround71
	NChannel
	// AnalysisError marks results whose file could not be decoded or
	// classified. It never comes out of Classify itself.
	AnalysisError
)

// String returns the display label used in tables and exports.
func (t Type) String() string {
	switch t {
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	case FakeStereo:
		return "fake stereo"
	case Surround51:
		return "5.1 surround"
	case Surround71:
		return "7.1 surround"
	case NChannel:
		return "multichannel"
	case AnalysisError:
		return "analysis error"
	default:
		return "unknown"
	}
}

// Describe renders the label with the concrete channel count for layouts the
// fixed names cannot express ("5 channels").
func Describe(t Type, channels int) string {
	if t == NChannel {
		return fmt.Sprintf("%d channels", channels)
	}
	return t.String()
}

// Classify determines the audio type from the channel count and the decoded
// per-channel sample buffers using the default correlation threshold.
func Classify(channels int, buffers [][]float64) Type {
	return ClassifyThreshold(channels, buffers, DefaultCorrelationThreshold)
}

// ClassifyThreshold is Classify with an explicit fake-stereo threshold.
//
// Two-channel files without sample data are reported as mono: the decoders
// always supply samples for stereo, so the bare-metadata branch is only
// reachable from header-only probes, where a collapsed mono stream is the
// safer reading.
func ClassifyThreshold(channels int, buffers [][]float64, threshold float64) Type {
	switch channels {
	case 1:
		return Mono
	case 2:
		if len(buffers) < 2 {
			return Mono
		}
		r := Correlation(buffers[0], buffers[1])
		// NaN correlation (constant or empty channels) compares false
		// here, so degenerate content falls through to plain stereo.
		if r > threshold {
			return FakeStereo
		}
		return Stereo
	case 6:
		return Surround51
	case 8:
		return Surround71
	default:
		return NChannel
	}
}

// Correlation computes the Pearson correlation coefficient between two sample
// sequences. Sequences of unequal length are truncated to the shorter one.
// The result is NaN when either sequence has zero variance or fewer than two
// samples.
func Correlation(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return math.NaN()
	}

	var meanA, meanB float64
	for i := 0; i < n; i++ {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= float64(n)
	meanB /= float64(n)

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varA*varB)
}
