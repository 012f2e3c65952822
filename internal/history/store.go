// Package history keeps a SQLite log of completed downloads.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ytget/yoinktube/internal/model"
)

// Table and column names
const (
	TableDownloads = "downloads"

	ColID         = "id"
	ColURL        = "url"
	ColOutputDir  = "output_dir"
	ColSelector   = "selector"
	ColAudioOnly  = "audio_only"
	ColStatus     = "status"
	ColStartedAt  = "started_at"
	ColFinishedAt = "finished_at"
)

// DefaultRecentLimit caps Recent when a non-positive limit is passed
const DefaultRecentLimit = 50

const createDownloadsTable = `
CREATE TABLE IF NOT EXISTS downloads (
	id TEXT PRIMARY KEY,
	url TEXT NOT NULL,
	output_dir TEXT NOT NULL,
	selector TEXT NOT NULL,
	audio_only INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL,
	started_at INTEGER NOT NULL,
	finished_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_downloads_finished_at ON downloads (finished_at);
`

// Store holds the history database
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database at %q: %w", path, err)
	}
	// SQLite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createDownloadsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a finished download
func (s *Store) Record(ctx context.Context, task *model.DownloadTask) error {
	if task == nil {
		return fmt.Errorf("nil task")
	}

	query := squirrel.
		Insert(TableDownloads).
		Columns(ColID, ColURL, ColOutputDir, ColSelector, ColAudioOnly, ColStatus, ColStartedAt, ColFinishedAt).
		Values(
			task.ID,
			task.URL,
			task.OutputDir,
			task.Selector,
			task.AudioOnly,
			string(task.Status),
			task.StartedAt.UnixNano(),
			task.FinishedAt.UnixNano(),
		).
		RunWith(s.db)

	if _, err := query.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to record download %s: %w", task.ID, err)
	}
	return nil
}

// Recent returns the latest downloads, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]*model.DownloadTask, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := squirrel.
		Select(ColID, ColURL, ColOutputDir, ColSelector, ColAudioOnly, ColStatus, ColStartedAt, ColFinishedAt).
		From(TableDownloads).
		OrderBy(ColFinishedAt + " DESC").
		Limit(uint64(limit)).
		RunWith(s.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query download history: %w", err)
	}
	defer rows.Close()

	var tasks []*model.DownloadTask
	for rows.Next() {
		var (
			task              model.DownloadTask
			status            string
			started, finished int64
		)
		if err := rows.Scan(&task.ID, &task.URL, &task.OutputDir, &task.Selector, &task.AudioOnly, &status, &started, &finished); err != nil {
			return nil, fmt.Errorf("failed to scan download history row: %w", err)
		}
		task.Status = model.TaskStatus(status)
		task.StartedAt = time.Unix(0, started)
		task.FinishedAt = time.Unix(0, finished)
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read download history: %w", err)
	}

	return tasks, nil
}
