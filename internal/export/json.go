package export

import (
	"encoding/json"
	"io"

	"github.com/wyh-alt/audio-analyzer/internal/analysis"
)

type jsonRow struct {
	Filename   string  `json:"filename"`
	AudioType  string  `json:"audio_type"`
	Channels   int     `json:"channels,omitempty"`
	SampleRate int     `json:"sample_rate,omitempty"`
	Duration   float64 `json:"duration_seconds,omitempty"`
	Path       string  `json:"filepath"`
	Error      string  `json:"error,omitempty"`
}

// WriteJSON writes results as an indented JSON array with numeric fields
// kept raw for scripting consumers.
func WriteJSON(w io.Writer, results []analysis.Result) error {
	rows := make([]jsonRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, jsonRow{
			Filename:   r.Filename,
			AudioType:  r.TypeDisplay(),
			Channels:   r.Channels,
			SampleRate: r.SampleRate,
			Duration:   r.Duration.Seconds(),
			Path:       r.Path,
			Error:      r.Err,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
