package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pmc-dev/pmc/internal/models"
)

// Task repository errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// TaskRepository handles task persistence.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskQuery defines filters for listing tasks.
type TaskQuery struct {
	Project *string            // Filter by project name
	Status  *models.TaskStatus // Filter by lifecycle status
	DueBy   *time.Time         // Tasks due at or before this time
}

// Create inserts a new task, assigning an ID and creation time when unset.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	tags, err := json.Marshal(task.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, project, priority, tags, due, status, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		task.Title,
		task.Project,
		task.Priority,
		string(tags),
		formatTimePtr(task.Due),
		string(task.Status),
		task.CreatedAt.UTC().Format(time.RFC3339),
		formatTimePtr(task.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// Get retrieves a task by ID.
func (r *TaskRepository) Get(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, project, priority, tags, due, status, created_at, completed_at
		FROM tasks WHERE id = ?`, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return task, nil
}

// List returns tasks matching the query, most urgent first (priority, then
// due date, then creation time).
func (r *TaskRepository) List(ctx context.Context, query TaskQuery) ([]*models.Task, error) {
	var (
		where []string
		args  []any
	)
	if query.Project != nil {
		where = append(where, "project = ?")
		args = append(args, *query.Project)
	}
	if query.Status != nil {
		where = append(where, "status = ?")
		args = append(args, string(*query.Status))
	}
	if query.DueBy != nil {
		where = append(where, "due IS NOT NULL AND due <= ?")
		args = append(args, query.DueBy.UTC().Format(time.RFC3339))
	}

	q := `SELECT id, title, project, priority, tags, due, status, created_at, completed_at FROM tasks`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY priority ASC, due IS NULL, due ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Projects returns the distinct non-empty project names, sorted.
func (r *TaskRepository) Projects(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT project FROM tasks WHERE project != '' ORDER BY project`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		projects = append(projects, name)
	}
	return projects, rows.Err()
}

// Update rewrites a task's mutable fields.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	tags, err := json.Marshal(task.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, project = ?, priority = ?, tags = ?, due = ?, status = ?, completed_at = ?
		WHERE id = ?`,
		task.Title,
		task.Project,
		task.Priority,
		string(tags),
		formatTimePtr(task.Due),
		string(task.Status),
		formatTimePtr(task.CompletedAt),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task %s: %w", task.ID, err)
	}
	return requireRow(result)
}

// Complete marks a task done, stamping the completion time.
func (r *TaskRepository) Complete(ctx context.Context, id string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, completed_at = ? WHERE id = ?`,
		string(models.TaskStatusDone), now, id)
	if err != nil {
		return fmt.Errorf("complete task %s: %w", id, err)
	}
	return requireRow(result)
}

// Delete removes a task and its time entries.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return requireRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task        models.Task
		tags        string
		due         sql.NullString
		status      string
		createdAt   string
		completedAt sql.NullString
	)
	if err := row.Scan(&task.ID, &task.Title, &task.Project, &task.Priority,
		&tags, &due, &status, &createdAt, &completedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &task.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	task.Status = models.TaskStatus(status)

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	task.CreatedAt = created

	if task.Due, err = parseTimePtr(due); err != nil {
		return nil, fmt.Errorf("parse due: %w", err)
	}
	if task.CompletedAt, err = parseTimePtr(completedAt); err != nil {
		return nil, fmt.Errorf("parse completed_at: %w", err)
	}
	return &task, nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseTimePtr(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
