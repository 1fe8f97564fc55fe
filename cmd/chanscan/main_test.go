package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/wyh-alt/audio-analyzer/internal/analysis"
	"github.com/wyh-alt/audio-analyzer/internal/classify"
)

func TestRenderResultsIncludesDisplayColumns(t *testing.T) {
	results := []analysis.Result{
		{
			Filename:   "song.wav",
			Path:       "/music/song.wav",
			Type:       classify.Stereo,
			Channels:   2,
			SampleRate: 44100,
			Duration:   12340 * time.Millisecond,
		},
		{
			Filename: "broken.flac",
			Path:     "/music/broken.flac",
			Type:     classify.AnalysisError,
			Err:      "decode audio: short read",
		},
	}

	out := renderResults(results)
	for _, want := range []string{"song.wav", "stereo", "44.1kHz", "12.34s", "broken.flac", "analysis error"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummaryCountsTypes(t *testing.T) {
	results := []analysis.Result{
		{Filename: "a.wav", Type: classify.Mono, Channels: 1},
		{Filename: "b.wav", Type: classify.Mono, Channels: 1},
		{Filename: "c.wav", Type: classify.Stereo, Channels: 2},
	}

	var buf bytes.Buffer
	printSummary(&buf, results)

	got := buf.String()
	if !strings.Contains(got, "3 files analyzed") {
		t.Fatalf("summary missing file count: %q", got)
	}
	if !strings.Contains(got, "mono: 2") || !strings.Contains(got, "stereo: 1") {
		t.Fatalf("summary missing type counts: %q", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"analyze", "config", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}
