// Package analysis runs batches of audio files through decode and
// classification on a bounded worker pool.
//
// A Session owns exactly one batch at a time: it fans submitted paths out to
// K workers, collects per-file results in completion order, ratchets an
// aggregate progress percentage that never regresses under concurrent
// updates, and supports cooperative cancellation that keeps every result
// already produced. Consumers observe the run through a single event channel
// carrying whole results, progress updates, and a final completion marker.
//
// Per-file failures are recorded as error results and never abort the batch;
// only submission-time problems (an empty path list, a session already
// running) surface as errors from Start.
package analysis
