// Package config loads, normalizes, and validates chanscan configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CHANSCAN_LOG_LEVEL. The Config type centralizes every knob the CLI needs:
// worker count, correlation threshold, accepted file extensions, export
// format, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config
