package analysis

import (
	"path/filepath"
	"sync/atomic"

	"github.com/wyh-alt/audio-analyzer/internal/classify"
	"github.com/wyh-alt/audio-analyzer/internal/decode"
)

// DecodeFunc decodes one file into per-channel sample buffers. Sessions use
// decode.ReadFile unless a test substitutes its own.
type DecodeFunc func(path string) (*decode.Audio, error)

// Task is the unit of work: one file, one eventual Result. The cancellation
// flag is owned by the task but set externally by the session.
type Task struct {
	Path  string
	Index int
	Total int

	cancelled atomic.Bool
}

// Cancel marks the task so it performs no work if it has not started yet.
// Tasks already past their entry check run to completion.
func (t *Task) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether the task has been asked to stop.
func (t *Task) Cancelled() bool {
	return t.cancelled.Load()
}

// run executes the task. The second return value is false when the task
// observed cancellation before starting, in which case no result exists.
// Decode or classification failure produces an error-marked result; it never
// propagates as an error.
func (t *Task) run(decodeFn DecodeFunc, threshold float64) (Result, bool) {
	if t.Cancelled() {
		return Result{}, false
	}

	audio, err := decodeFn(t.Path)
	if err != nil {
		return Result{
			Filename: filepath.Base(t.Path),
			Path:     t.Path,
			Type:     classify.AnalysisError,
			Err:      err.Error(),
		}, true
	}

	return Result{
		Filename:   filepath.Base(t.Path),
		Path:       t.Path,
		Type:       classify.ClassifyThreshold(audio.Info.Channels, audio.Samples, threshold),
		Channels:   audio.Info.Channels,
		SampleRate: audio.Info.SampleRate,
		Duration:   audio.Info.Duration(),
	}, true
}
