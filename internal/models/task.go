package models

import (
	"strings"
	"time"
)

// TaskStatus describes where a task sits in its lifecycle.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusActive  TaskStatus = "active"
	TaskStatusDone    TaskStatus = "done"
)

// Priority levels for tasks. Lower is more urgent, matching how the
// task list sorts.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// Task is a single unit of work tracked by pmc.
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id"`

	// Title is the short description shown in lists.
	Title string `json:"title"`

	// Project groups related tasks. Empty means unfiled.
	Project string `json:"project,omitempty"`

	// Priority is 1 (high) through 3 (low).
	Priority int `json:"priority"`

	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty"`

	// Due is the optional due date.
	Due *time.Time `json:"due,omitempty"`

	// Status is the task lifecycle state.
	Status TaskStatus `json:"status"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is set when the task transitions to done.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Validate checks that required fields are present.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrInvalidTask
	}
	if t.Priority < PriorityHigh || t.Priority > PriorityLow {
		return ErrInvalidTask
	}
	return nil
}

// Overdue reports whether the task has a due date in the past and is not done.
func (t *Task) Overdue(now time.Time) bool {
	return t.Due != nil && t.Due.Before(now) && t.Status != TaskStatusDone
}

// TimeEntry records time spent on a task.
type TimeEntry struct {
	// ID is the unique identifier for the entry.
	ID string `json:"id"`

	// TaskID references the task the time was spent on.
	TaskID string `json:"task_id"`

	// Start is when the timer started.
	Start time.Time `json:"start"`

	// End is when the timer stopped; nil while running.
	End *time.Time `json:"end,omitempty"`

	// Note is an optional description of the work.
	Note string `json:"note,omitempty"`
}

// Duration returns the elapsed time of the entry, using now for a
// still-running timer.
func (e *TimeEntry) Duration(now time.Time) time.Duration {
	end := now
	if e.End != nil {
		end = *e.End
	}
	return end.Sub(e.Start)
}
