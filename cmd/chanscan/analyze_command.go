package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/wyh-alt/audio-analyzer/internal/analysis"
	"github.com/wyh-alt/audio-analyzer/internal/config"
	"github.com/wyh-alt/audio-analyzer/internal/export"
	"github.com/wyh-alt/audio-analyzer/internal/logging"
	"github.com/wyh-alt/audio-analyzer/internal/scan"
)

func newAnalyzeCommand(configFlag *string) *cobra.Command {
	var jobs int
	var output string
	var format string
	var sortOutput bool
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Analyze audio files or folders and report their channel layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			files, err := scan.Gather(args, cfg.Analysis.Extensions)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no audio files found under the given paths")
			}

			opts := []analysis.Option{
				analysis.WithCorrelationThreshold(cfg.Analysis.CorrelationThreshold),
			}
			workers := cfg.Analysis.Workers
			if jobs > 0 {
				workers = jobs
			}
			if workers > 0 {
				opts = append(opts, analysis.WithWorkers(workers))
			}
			session := analysis.NewSession(logger, opts...)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				if _, ok := <-sigCh; ok {
					fmt.Fprintln(cmd.ErrOrStderr(), "stopping: waiting for in-flight files")
					session.Cancel()
				}
			}()

			if err := session.Start(context.Background(), files); err != nil {
				return err
			}

			bar := newProgressBar(len(files), noProgress)
			var results []analysis.Result
			for event := range session.Events() {
				switch event.Kind {
				case analysis.EventResult:
					results = append(results, event.Result)
				case analysis.EventProgress:
					if bar != nil {
						_ = bar.Set(event.Percent)
					}
				}
			}
			state := session.Wait()
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(cmd.ErrOrStderr())
			}

			if sortOutput {
				export.SortByFilename(results)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderResults(results))
			printSummary(out, results)
			if state == analysis.StateCancelled {
				fmt.Fprintf(out, "analysis cancelled after %d of %d files\n", len(results), len(files))
			}

			if output != "" {
				dest, err := resolveExportPath(cfg, output)
				if err != nil {
					return err
				}
				exportFormat := format
				if exportFormat == "" {
					exportFormat = cfg.Export.Format
				}
				if err := export.Write(dest, exportFormat, results); err != nil {
					return err
				}
				fmt.Fprintf(out, "results exported to %s\n", dest)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Concurrent analysis workers (0 = config/auto)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Export results to this file")
	cmd.Flags().StringVar(&format, "format", "", "Export format: csv, json, or sqlite (default from config)")
	cmd.Flags().BoolVar(&sortOutput, "sort", false, "Sort the table and export by filename instead of completion order")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

func newProgressBar(files int, noProgress bool) *progressbar.ProgressBar {
	if noProgress || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(fmt.Sprintf("analyzing %d files", files)),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

func printSummary(out io.Writer, results []analysis.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(out, "%d files analyzed:", len(results))
	for i, row := range export.Summarize(results) {
		if i > 0 {
			fmt.Fprint(out, ",")
		}
		fmt.Fprintf(out, " %s: %d", row.Label, row.Count)
	}
	fmt.Fprintln(out)
}

// resolveExportPath places bare filenames in the configured export directory
// and leaves explicit paths alone.
func resolveExportPath(cfg *config.Config, output string) (string, error) {
	if filepath.Dir(output) != "." || cfg.Paths.ExportDir == "" {
		return config.ExpandPath(output)
	}
	return filepath.Join(cfg.Paths.ExportDir, output), nil
}
