package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.Workers < 0 {
		return errors.New("analysis.workers must be zero (auto) or a positive count")
	}
	if c.Analysis.CorrelationThreshold <= 0 || c.Analysis.CorrelationThreshold > 1 {
		return errors.New("analysis.correlation_threshold must be between 0 and 1")
	}
	if len(c.Analysis.Extensions) == 0 {
		return errors.New("analysis.extensions must list at least one file extension")
	}
	return nil
}

func (c *Config) validateExport() error {
	switch c.Export.Format {
	case "csv", "sqlite", "json":
		return nil
	default:
		return fmt.Errorf("export.format: unsupported value %q (expected csv, sqlite, or json)", c.Export.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
}
