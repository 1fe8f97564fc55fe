package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gofrs/flock"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/wyh-alt/audio-analyzer/internal/analysis"
)

// Header lists the export columns in order.
var Header = []string{"filename", "audio_type", "channels", "sample_rate", "duration", "filepath", "error"}

// Write serializes results to path in the named format (csv, json, or
// sqlite). The destination is guarded by a sidecar lock so concurrent runs
// pointed at the same file fail fast instead of corrupting it.
func Write(path, format string, results []analysis.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire export lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("export destination %s is locked by another run", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	switch format {
	case "csv":
		return writeFile(path, results, WriteCSV)
	case "json":
		return writeFile(path, results, WriteJSON)
	case "sqlite":
		return WriteSQLite(path, results)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func writeFile(path string, results []analysis.Result, write func(io.Writer, []analysis.Result) error) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := write(out, results); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// SortByFilename orders results by filename using a collation that sorts
// embedded numbers naturally (track2 before track10), falling back to the
// full path for duplicate names.
func SortByFilename(results []analysis.Result) {
	collator := collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
	sort.SliceStable(results, func(i, j int) bool {
		if cmp := collator.CompareString(results[i].Filename, results[j].Filename); cmp != 0 {
			return cmp < 0
		}
		return collator.CompareString(results[i].Path, results[j].Path) < 0
	})
}

// TypeCount is one row of the batch summary.
type TypeCount struct {
	Label string
	Count int
}

// Summarize tallies results per audio type, most frequent first (ties sort
// alphabetically).
func Summarize(results []analysis.Result) []TypeCount {
	counts := map[string]int{}
	for _, r := range results {
		counts[r.TypeDisplay()]++
	}
	out := make([]TypeCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, TypeCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
