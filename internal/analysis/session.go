package analysis

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/wyh-alt/audio-analyzer/internal/classify"
	"github.com/wyh-alt/audio-analyzer/internal/decode"
	"github.com/wyh-alt/audio-analyzer/internal/logging"
)

// State describes the lifecycle of a batch: Idle until the first submission,
// Running while workers drain the queue, then Finished or Cancelled. Both
// terminal states accept a new Start, which begins a fresh batch.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Status is a point-in-time summary of the session for status displays.
type Status struct {
	State     State
	BatchID   string
	Completed int
	Total     int
	Percent   int
	Workers   int
}

// DefaultWorkers returns the default concurrency bound: half the CPUs, and
// never fewer than two.
func DefaultWorkers() int {
	if k := runtime.NumCPU() / 2; k > 2 {
		return k
	}
	return 2
}

// Option configures optional Session behavior.
type Option func(*Session)

// WithWorkers sets the initial concurrency bound.
func WithWorkers(k int) Option {
	return func(s *Session) { s.workers = k }
}

// WithCorrelationThreshold overrides the fake-stereo detection threshold.
func WithCorrelationThreshold(threshold float64) Option {
	return func(s *Session) { s.threshold = threshold }
}

// WithDecodeFunc substitutes the decoder, used by tests to analyze synthetic
// audio without files on disk.
func WithDecodeFunc(fn DecodeFunc) Option {
	return func(s *Session) { s.decodeFn = fn }
}

// Session executes analysis batches. One batch is active at a time; all
// mutable batch state lives behind a single mutex that is held only for the
// brief bookkeeping operations, never around decode or classification.
type Session struct {
	logger    *slog.Logger
	decodeFn  DecodeFunc
	threshold float64

	mu        sync.Mutex
	state     State
	cancelled bool
	workers   int
	batchID   string
	total     int
	tasks     []*Task
	collector *Collector
	progress  *ProgressTracker
	events    chan Event
	done      chan struct{}
}

// NewSession constructs an idle session. A nil logger is replaced with a
// no-op logger.
func NewSession(logger *slog.Logger, opts ...Option) *Session {
	s := &Session{
		logger:    logging.NewComponentLogger(logger, "analysis"),
		decodeFn:  decode.ReadFile,
		threshold: classify.DefaultCorrelationThreshold,
		workers:   DefaultWorkers(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	if s.decodeFn == nil {
		s.decodeFn = decode.ReadFile
	}
	return s
}

// SetWorkers adjusts the concurrency bound for the next batch. It fails with
// ErrAlreadyRunning while a batch is active.
func (s *Session) SetWorkers(k int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRunning {
		return ErrAlreadyRunning
	}
	if k < 1 {
		k = 1
	}
	s.workers = k
	return nil
}

// Start submits a batch of file paths. It fails with ErrAlreadyRunning while
// a batch is active and ErrNoFiles for an empty list; neither changes the
// session state. The context is consulted between tasks only, so a caller
// may impose a deadline without interrupting an in-flight decode.
func (s *Session) Start(ctx context.Context, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s.mu.Lock()
	if s.state == StateRunning {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	if len(paths) == 0 {
		s.mu.Unlock()
		return ErrNoFiles
	}

	total := len(paths)
	s.state = StateRunning
	s.cancelled = false
	s.batchID = uuid.NewString()
	s.total = total
	s.collector = NewCollector(total)
	s.progress = &ProgressTracker{}
	// Capacity covers every event the batch can emit, so workers never
	// block on a slow consumer.
	s.events = make(chan Event, 2*total+1)
	s.done = make(chan struct{})
	s.tasks = make([]*Task, total)

	queue := make(chan *Task, total)
	for i, path := range paths {
		task := &Task{Path: path, Index: i, Total: total}
		s.tasks[i] = task
		queue <- task
	}
	close(queue)

	workers := s.workers
	if workers > total {
		workers = total
	}
	logger := s.logger.With(logging.String(logging.FieldBatchID, s.batchID))
	collector := s.collector
	progress := s.progress
	events := s.events
	done := s.done
	s.mu.Unlock()

	logger.Info("batch started",
		logging.Int("files", total),
		logging.Int("workers", workers),
	)

	var wg sync.WaitGroup
	wg.Add(workers)
	for slot := 0; slot < workers; slot++ {
		go s.runWorker(ctx, logger, slot, queue, collector, progress, events, &wg)
	}
	go s.finalize(logger, &wg, collector, progress, events, done)

	return nil
}

// Cancel requests a cooperative stop of the active batch. Queued tasks are
// abandoned, in-flight tasks finish and their results are kept. Cancel is a
// no-op outside Running.
func (s *Session) Cancel() {
	s.mu.Lock()
	if s.state != StateRunning {
		s.mu.Unlock()
		return
	}
	s.cancelled = true
	tasks := s.tasks
	batchID := s.batchID
	s.mu.Unlock()

	for _, task := range tasks {
		task.Cancel()
	}
	s.logger.Info("batch cancellation requested", logging.String(logging.FieldBatchID, batchID))
}

// Wait blocks until the active batch reaches a terminal state and returns
// it. Without an active batch it returns immediately.
func (s *Session) Wait() State {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
	return s.State()
}

// Events returns the current batch's event stream. Valid after Start; the
// channel is closed once EventFinished has been delivered.
func (s *Session) Events() <-chan Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsRunning reports whether a batch is active.
func (s *Session) IsRunning() bool {
	return s.State() == StateRunning
}

// Results returns a snapshot of the current batch's results in completion
// order.
func (s *Session) Results() []Result {
	s.mu.Lock()
	collector := s.collector
	s.mu.Unlock()
	if collector == nil {
		return nil
	}
	return collector.Results()
}

// Snapshot summarizes the session for status displays.
func (s *Session) Snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := Status{
		State:   s.state,
		BatchID: s.batchID,
		Total:   s.total,
		Workers: s.workers,
	}
	if s.collector != nil {
		status.Completed = s.collector.Completed()
	}
	if s.progress != nil {
		status.Percent = s.progress.Percent()
	}
	return status
}

func (s *Session) runWorker(ctx context.Context, logger *slog.Logger, slot int, queue <-chan *Task, collector *Collector, progress *ProgressTracker, events chan<- Event, wg *sync.WaitGroup) {
	defer wg.Done()
	wlog := logger.With(logging.Int(logging.FieldWorker, slot))

	for task := range queue {
		if ctx.Err() != nil {
			task.Cancel()
		}

		result, ok := task.run(s.decodeFn, s.threshold)
		if !ok {
			wlog.Debug("task skipped after cancellation", logging.String(logging.FieldFile, task.Path))
			continue
		}

		if result.Failed() {
			wlog.Warn("analysis failed",
				logging.String(logging.FieldFile, task.Path),
				logging.String("error", result.Err),
			)
		} else {
			wlog.Debug("file analyzed",
				logging.String(logging.FieldFile, task.Path),
				logging.String("audio_type", result.TypeDisplay()),
			)
		}

		completed, _ := collector.Add(result)
		percent := progress.Report(task.Index+1, task.Total)
		events <- Event{Kind: EventResult, Result: result}
		events <- Event{Kind: EventProgress, Completed: completed, Total: task.Total, Percent: percent}
	}
}

func (s *Session) finalize(logger *slog.Logger, wg *sync.WaitGroup, collector *Collector, progress *ProgressTracker, events chan<- Event, done chan struct{}) {
	wg.Wait()

	completed := collector.Completed()
	s.mu.Lock()
	state := StateFinished
	if s.cancelled || completed != s.total {
		state = StateCancelled
	}
	s.state = state
	total := s.total
	s.mu.Unlock()

	events <- Event{
		Kind:      EventFinished,
		State:     state,
		Completed: completed,
		Total:     total,
		Percent:   progress.Percent(),
	}
	close(events)
	close(done)

	logger.Info("batch "+state.String(),
		logging.Int("completed", completed),
		logging.Int("total", total),
	)
}
