package store

import (
	"errors"
	"fmt"
)

// ErrLocked reports that another invocation holds the writer lock.
var ErrLocked = errors.New("task file is locked by another process")

// ParseError reports a task file whose content is not a valid task store.
type ParseError struct {
	Path string // Task file path
	Err  error  // Schema or decoding error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse task file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
