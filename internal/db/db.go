// Package db provides SQLite persistence for pmc tasks and time entries.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps the sql handle so repositories share one connection.
type DB struct {
	*sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	project TEXT NOT NULL DEFAULT '',
	priority INTEGER NOT NULL DEFAULT 2,
	tags TEXT NOT NULL DEFAULT '[]',
	due TEXT,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at TEXT NOT NULL,
	completed_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project);

CREATE TABLE IF NOT EXISTS time_entries (
	id TEXT PRIMARY KEY,
	task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	started_at TEXT NOT NULL,
	ended_at TEXT,
	note TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_time_entries_task ON time_entries(task_id);
`

// Open opens (creating if necessary) the database at path and ensures the
// schema exists.
func Open(path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("database path is required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}

	handle, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if _, err := handle.ExecContext(context.Background(), schema); err != nil {
		handle.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &DB{DB: handle}, nil
}
