package analysis

import "errors"

var (
	// ErrAlreadyRunning is returned when a batch is submitted or the worker
	// count is changed while another batch is still active.
	ErrAlreadyRunning = errors.New("analysis batch already running")
	// ErrNoFiles is returned when a batch is submitted with no paths; the
	// batch does not start and the session state is unchanged.
	ErrNoFiles = errors.New("no files to analyze")
)
