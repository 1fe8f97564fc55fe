package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/wyh-alt/audio-analyzer/internal/analysis"
)

// WriteCSV writes the header row followed by one row per result.
func WriteCSV(w io.Writer, results []analysis.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Filename,
			r.TypeDisplay(),
			r.ChannelsDisplay(),
			r.SampleRateDisplay(),
			r.DurationDisplay(),
			r.Path,
			r.Err,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
