package task

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that no task has the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrAlreadyCompleted reports a second completion of the same task.
	ErrAlreadyCompleted = errors.New("task already completed")

	// ErrIDsExhausted reports that the ID counter cannot advance any further.
	ErrIDsExhausted = errors.New("no task ids left")
)

// Error ties a store failure to the task ID it concerns.
// Match the kind with errors.Is against the Err* sentinels.
type Error struct {
	ID  int
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("task %d not found", e.ID)
	case errors.Is(e.Err, ErrAlreadyCompleted):
		return fmt.Sprintf("task %d is already completed", e.ID)
	case errors.Is(e.Err, ErrIDsExhausted):
		return fmt.Sprintf("cannot assign task id %d: no task ids left", e.ID)
	default:
		return fmt.Sprintf("task %d: %v", e.ID, e.Err)
	}
}

// Unwrap returns the underlying error kind.
func (e *Error) Unwrap() error {
	return e.Err
}
