package cli

import (
	"errors"
	"log/slog"

	"github.com/roach88/todo/internal/store"
	"github.com/roach88/todo/internal/task"
)

// loadTasks reads the task store without taking the writer lock.
func loadTasks(opts *RootOptions) (*task.Store, error) {
	f := store.Open(opts.File)
	s, err := f.Load()
	if err != nil {
		return nil, storageError(f, err)
	}
	return s, nil
}

// mutateTasks runs fn on the task store under the writer lock and saves the
// store when fn succeeds. Nothing is written when fn fails.
func mutateTasks(opts *RootOptions, fn func(*task.Store) error) error {
	f := store.Open(opts.File)

	lock, err := f.Lock()
	if err != nil {
		return storageError(f, err)
	}
	defer func() {
		if err := lock.Release(); err != nil {
			slog.Warn("failed to release lock", "path", f.LockPath(), "owner", lock.Owner(), "error", err)
		}
	}()

	s, err := f.Load()
	if err != nil {
		return storageError(f, err)
	}

	if err := fn(s); err != nil {
		return err
	}

	if err := f.Save(s); err != nil {
		return storageError(f, err)
	}
	return nil
}

// storageError maps a failure on f to an ExitError carrying the file paths.
func storageError(f *store.File, err error) error {
	details := map[string]string{"file": f.Path()}

	var exitErr *ExitError
	var parseErr *store.ParseError
	switch {
	case errors.As(err, &parseErr):
		exitErr = WrapExitError(ExitStorageError, ErrCodeParse, "task file is corrupt", err)
	case errors.Is(err, store.ErrLocked):
		exitErr = WrapExitError(ExitStorageError, ErrCodeLocked, "cannot modify tasks", err)
		details["lock"] = f.LockPath()
	default:
		exitErr = WrapExitError(ExitStorageError, ErrCodeIO, "cannot access task file", err)
	}
	exitErr.Details = details
	return exitErr
}

// taskError maps a task.Store failure to an ExitError.
func taskError(err error) error {
	switch {
	case errors.Is(err, task.ErrNotFound):
		return WrapExitError(ExitFailure, ErrCodeNotFound, "cannot complete task", err)
	case errors.Is(err, task.ErrAlreadyCompleted):
		return WrapExitError(ExitFailure, ErrCodeAlreadyCompleted, "cannot complete task", err)
	case errors.Is(err, task.ErrIDsExhausted):
		return WrapExitError(ExitFailure, ErrCodeIDsExhausted, "cannot add task", err)
	default:
		return WrapExitError(ExitFailure, ErrCodeUsage, "task operation failed", err)
	}
}
