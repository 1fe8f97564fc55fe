package analysis

import (
	"fmt"
	"time"

	"github.com/wyh-alt/audio-analyzer/internal/classify"
)

// Result is the outcome of analyzing one file. Exactly one of the
// classification fields or Err is meaningful: failed results carry
// classify.AnalysisError and the error message, successful ones leave Err
// empty.
type Result struct {
	Filename   string
	Path       string
	Type       classify.Type
	Channels   int
	SampleRate int
	Duration   time.Duration
	Err        string
}

// Failed reports whether the file could not be analyzed.
func (r Result) Failed() bool {
	return r.Err != ""
}

// TypeDisplay renders the audio type label, expanding generic multichannel
// layouts to their channel count.
func (r Result) TypeDisplay() string {
	return classify.Describe(r.Type, r.Channels)
}

// ChannelsDisplay renders the channel count, or a dash for failed results.
func (r Result) ChannelsDisplay() string {
	if r.Failed() {
		return "-"
	}
	return fmt.Sprintf("%d", r.Channels)
}

// SampleRateDisplay renders the sample rate as "44.1kHz", or a dash for
// failed results.
func (r Result) SampleRateDisplay() string {
	if r.Failed() {
		return "-"
	}
	return fmt.Sprintf("%.1fkHz", float64(r.SampleRate)/1000)
}

// DurationDisplay renders the duration as "12.34s", or a dash for failed
// results.
func (r Result) DurationDisplay() string {
	if r.Failed() {
		return "-"
	}
	return fmt.Sprintf("%.2fs", r.Duration.Seconds())
}
