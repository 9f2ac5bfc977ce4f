package models

import "errors"

// Validation errors shared across repositories.
var (
	ErrInvalidTask      = errors.New("invalid task")
	ErrInvalidTimeEntry = errors.New("invalid time entry")
)
