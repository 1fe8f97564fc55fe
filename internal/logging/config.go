package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wyh-alt/audio-analyzer/internal/config"
)

// NewFromConfig creates a logger using application config defaults. Log lines
// go to stderr so table output on stdout stays machine-readable; when a log
// directory is configured the same stream is appended to chanscan.log.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console"})
	}

	outputs := []string{"stderr"}
	if cfg.Paths.LogDir != "" {
		if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure log directory: %w", err)
		}
		outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "chanscan.log"))
	}

	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: outputs,
	})
}
