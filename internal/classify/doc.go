// Package classify maps decoded channel data to an audio layout label.
//
// The interesting case is two-channel audio: files that carry the same signal
// on both channels ("fake stereo", typically a mono source mislabeled during
// mastering) are detected by computing the Pearson correlation between the
// channel sample sequences. Everything else is a straight channel-count
// lookup. All functions are pure and deterministic.
package classify
