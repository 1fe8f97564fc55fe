// Package logging assembles the structured slog loggers used across the
// analyzer.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes attribute helpers so batch code tags log lines with
// batch IDs, worker indexes, and file paths in a consistent shape. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
