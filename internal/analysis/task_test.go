package analysis

import (
	"errors"
	"testing"
	"time"

	"github.com/wyh-alt/audio-analyzer/internal/classify"
	"github.com/wyh-alt/audio-analyzer/internal/decode"
)

func TestTaskCancelledBeforeStartEmitsNothing(t *testing.T) {
	ran := false
	task := &Task{Path: "/x/a.wav", Index: 0, Total: 1}
	task.Cancel()

	_, ok := task.run(func(string) (*decode.Audio, error) {
		ran = true
		return nil, nil
	}, classify.DefaultCorrelationThreshold)

	if ok {
		t.Fatal("cancelled task produced a result")
	}
	if ran {
		t.Fatal("cancelled task invoked the decoder")
	}
}

func TestTaskDecodeFailureBecomesErrorResult(t *testing.T) {
	task := &Task{Path: "/x/broken.wav", Index: 0, Total: 1}
	result, ok := task.run(func(string) (*decode.Audio, error) {
		return nil, errors.New("header truncated")
	}, classify.DefaultCorrelationThreshold)

	if !ok {
		t.Fatal("failed task should still produce a result")
	}
	if result.Type != classify.AnalysisError {
		t.Fatalf("type = %v, want analysis error marker", result.Type)
	}
	if result.Err != "header truncated" {
		t.Fatalf("err = %q", result.Err)
	}
	if result.Filename != "broken.wav" || result.Path != "/x/broken.wav" {
		t.Fatalf("identity fields wrong: %+v", result)
	}
}

func TestTaskSuccessCarriesMetadata(t *testing.T) {
	task := &Task{Path: "/music/track.flac", Index: 2, Total: 5}
	result, ok := task.run(func(string) (*decode.Audio, error) {
		samples := [][]float64{{0, 0.5, -0.5, 0.25}, {0.3, -0.3, 0.6, -0.6}}
		return &decode.Audio{
			Info:    decode.Info{Channels: 2, SampleRate: 48000, TotalFrames: 4},
			Samples: samples,
		}, nil
	}, classify.DefaultCorrelationThreshold)

	if !ok || result.Failed() {
		t.Fatalf("unexpected failure: %+v", result)
	}
	if result.Channels != 2 || result.SampleRate != 48000 {
		t.Fatalf("metadata wrong: %+v", result)
	}
	if result.SampleRateDisplay() != "48.0kHz" {
		t.Fatalf("sample rate display = %q", result.SampleRateDisplay())
	}
}

func TestResultDisplays(t *testing.T) {
	ok := Result{
		Filename:   "a.wav",
		Type:       classify.NChannel,
		Channels:   5,
		SampleRate: 44100,
		Duration:   1234 * time.Millisecond,
	}
	if got := ok.TypeDisplay(); got != "5 channels" {
		t.Fatalf("TypeDisplay = %q", got)
	}
	if got := ok.SampleRateDisplay(); got != "44.1kHz" {
		t.Fatalf("SampleRateDisplay = %q", got)
	}
	if got := ok.DurationDisplay(); got != "1.23s" {
		t.Fatalf("DurationDisplay = %q", got)
	}

	failed := Result{Filename: "b.wav", Type: classify.AnalysisError, Err: "boom"}
	if failed.ChannelsDisplay() != "-" || failed.SampleRateDisplay() != "-" || failed.DurationDisplay() != "-" {
		t.Fatalf("failed result should display dashes: %+v", failed)
	}
}
