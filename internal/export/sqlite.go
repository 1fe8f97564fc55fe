package export

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	_ "modernc.org/sqlite"

	"github.com/wyh-alt/audio-analyzer/internal/analysis"
)

//go:embed schema.sql
var schemaSQL string

// WriteSQLite writes results into a fresh single-table SQLite database at
// path. An existing file is replaced: the export is a point-in-time snapshot
// of one batch, not an accumulating store.
func WriteSQLite(path string, results []analysis.Result) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("replace existing export: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open export database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create export schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (filename, audio_type, channels, sample_rate_hz, duration_seconds, filepath, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare export insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx,
			r.Filename,
			r.TypeDisplay(),
			r.Channels,
			r.SampleRate,
			r.Duration.Seconds(),
			r.Path,
			r.Err,
		); err != nil {
			return fmt.Errorf("insert result for %s: %w", r.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}
