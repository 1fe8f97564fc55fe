// Package decode adapts third-party audio decoders behind one small surface.
//
// Probe reads container headers only and is cheap; ReadFile fully decodes a
// file into de-interleaved per-channel float64 buffers for the correlation
// test. WAV is handled by go-audio/wav, FLAC by tphakala/flac. Every failure
// mode (missing file, unknown extension, corrupt header, unsupported bit
// depth) surfaces as an error wrapping ErrDecode; there are no partial
// results.
package decode
