package config

const (
	defaultLogDir               = "~/.local/share/chanscan/logs"
	defaultExportDir            = "~/.local/share/chanscan/exports"
	defaultCorrelationThreshold = 0.98
	defaultExportFormat         = "csv"
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
)

// defaultExtensions mirrors the audio formats the folder scanner accepts.
var defaultExtensions = []string{".mp3", ".wav", ".flac", ".ogg", ".aac", ".m4a", ".wma"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Analysis: Analysis{
			Workers:              0,
			CorrelationThreshold: defaultCorrelationThreshold,
			Extensions:           append([]string{}, defaultExtensions...),
		},
		Export: Export{
			Format: defaultExportFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
