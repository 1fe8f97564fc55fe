package export_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/wyh-alt/audio-analyzer/internal/analysis"
	"github.com/wyh-alt/audio-analyzer/internal/classify"
	"github.com/wyh-alt/audio-analyzer/internal/export"
)

func sampleResults() []analysis.Result {
	return []analysis.Result{
		{
			Filename:   "track10.wav",
			Path:       "/music/track10.wav",
			Type:       classify.Stereo,
			Channels:   2,
			SampleRate: 44100,
			Duration:   90 * time.Second,
		},
		{
			Filename:   "track2.wav",
			Path:       "/music/track2.wav",
			Type:       classify.FakeStereo,
			Channels:   2,
			SampleRate: 48000,
			Duration:   30 * time.Second,
		},
		{
			Filename: "broken.flac",
			Path:     "/music/broken.flac",
			Type:     classify.AnalysisError,
			Err:      "decode error: broken.flac: invalid stream",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse csv: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(export.Header, ",") {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][1] != "stereo" || rows[1][3] != "44.1kHz" || rows[1][4] != "90.00s" {
		t.Fatalf("stereo row = %v", rows[1])
	}
	if rows[3][1] != "analysis error" || rows[3][2] != "-" || rows[3][6] == "" {
		t.Fatalf("error row = %v", rows[3])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteJSON(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("re-parse json: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0]["audio_type"] != "stereo" || rows[0]["sample_rate"] != float64(44100) {
		t.Fatalf("stereo row = %v", rows[0])
	}
	if _, present := rows[2]["channels"]; present {
		t.Fatalf("error row should omit zero channels: %v", rows[2])
	}
}

func TestWriteSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	if err := export.WriteSQLite(path, sampleResults()); err != nil {
		t.Fatalf("WriteSQLite failed: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open exported db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM results").Scan(&count); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 3 {
		t.Fatalf("got %d rows, want 3", count)
	}

	var audioType string
	var rate int
	err = db.QueryRowContext(context.Background(),
		"SELECT audio_type, sample_rate_hz FROM results WHERE filename = ?", "track2.wav",
	).Scan(&audioType, &rate)
	if err != nil {
		t.Fatalf("select row: %v", err)
	}
	if audioType != "fake stereo" || rate != 48000 {
		t.Fatalf("row = %s/%d", audioType, rate)
	}
}

func TestWriteSQLiteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	if err := export.WriteSQLite(path, sampleResults()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := export.WriteSQLite(path, sampleResults()[:1]); err != nil {
		t.Fatalf("second write: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM results").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("got %d rows after rewrite, want 1", count)
	}
}

func TestWriteDispatchesAndLocks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := export.Write(path, "csv", sampleResults()); err != nil {
		t.Fatalf("Write csv failed: %v", err)
	}
	if err := export.Write(path, "xlsx", nil); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestSortByFilenameIsNatural(t *testing.T) {
	results := sampleResults()
	export.SortByFilename(results)

	got := []string{results[0].Filename, results[1].Filename, results[2].Filename}
	want := []string{"broken.flac", "track2.wav", "track10.wav"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	results := append(sampleResults(), analysis.Result{
		Filename: "extra.wav", Path: "/music/extra.wav",
		Type: classify.FakeStereo, Channels: 2, SampleRate: 44100,
	})
	summary := export.Summarize(results)

	if len(summary) != 3 {
		t.Fatalf("got %d summary rows: %v", len(summary), summary)
	}
	if summary[0].Label != "fake stereo" || summary[0].Count != 2 {
		t.Fatalf("top summary row = %+v", summary[0])
	}
}
