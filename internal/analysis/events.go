package analysis

// EventKind discriminates batch event payloads.
type EventKind int

const (
	// EventResult carries one whole Result.
	EventResult EventKind = iota
	// EventProgress carries the completed count, total, and ratcheted percent.
	EventProgress
	// EventFinished is the final event of a batch; State tells whether the
	// run finished or was cancelled. The event channel is closed after it.
	EventFinished
)

// Event is one message on the batch event stream. Results arrive whole,
// never field by field, and the stream is meant for a single consumer.
type Event struct {
	Kind      EventKind
	Result    Result
	Completed int
	Total     int
	Percent   int
	State     State
}
