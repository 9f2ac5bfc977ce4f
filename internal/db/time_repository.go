package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pmc-dev/pmc/internal/models"
)

// Time entry repository errors.
var (
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrTimerRunning      = errors.New("a timer is already running for this task")
)

// TimeEntryRepository handles time entry persistence.
type TimeEntryRepository struct {
	db *DB
}

// NewTimeEntryRepository creates a new TimeEntryRepository.
func NewTimeEntryRepository(db *DB) *TimeEntryRepository {
	return &TimeEntryRepository{db: db}
}

// Start opens a timer for a task. Only one open timer per task is allowed.
func (r *TimeEntryRepository) Start(ctx context.Context, taskID, note string) (*models.TimeEntry, error) {
	if taskID == "" {
		return nil, models.ErrInvalidTimeEntry
	}

	var open int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM time_entries WHERE task_id = ? AND ended_at IS NULL`, taskID).Scan(&open)
	if err != nil {
		return nil, fmt.Errorf("check open timers: %w", err)
	}
	if open > 0 {
		return nil, ErrTimerRunning
	}

	entry := &models.TimeEntry{
		ID:     uuid.New().String(),
		TaskID: taskID,
		Start:  time.Now().UTC(),
		Note:   note,
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO time_entries (id, task_id, started_at, ended_at, note) VALUES (?, ?, ?, NULL, ?)`,
		entry.ID, entry.TaskID, entry.Start.Format(time.RFC3339), entry.Note)
	if err != nil {
		return nil, fmt.Errorf("insert time entry: %w", err)
	}
	return entry, nil
}

// Stop closes the open timer for a task.
func (r *TimeEntryRepository) Stop(ctx context.Context, taskID string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	result, err := r.db.ExecContext(ctx,
		`UPDATE time_entries SET ended_at = ? WHERE task_id = ? AND ended_at IS NULL`, now, taskID)
	if err != nil {
		return fmt.Errorf("stop timer for %s: %w", taskID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTimeEntryNotFound
	}
	return nil
}

// ListForDay returns entries whose start falls on the given day (UTC).
func (r *TimeEntryRepository) ListForDay(ctx context.Context, day time.Time) ([]*models.TimeEntry, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, started_at, ended_at, note FROM time_entries
		WHERE started_at >= ? AND started_at < ?
		ORDER BY started_at ASC`,
		from.Format(time.RFC3339), to.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.TimeEntry
	for rows.Next() {
		var (
			entry models.TimeEntry
			start string
			end   sql.NullString
		)
		if err := rows.Scan(&entry.ID, &entry.TaskID, &start, &end, &entry.Note); err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		if entry.Start, err = time.Parse(time.RFC3339, start); err != nil {
			return nil, fmt.Errorf("parse start: %w", err)
		}
		if entry.End, err = parseTimePtr(end); err != nil {
			return nil, fmt.Errorf("parse end: %w", err)
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
