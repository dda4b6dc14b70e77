package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// lockSuffix is appended to the task file path to name its lock file.
const lockSuffix = ".lock"

// lockInfo is the content of a lock file.
type lockInfo struct {
	Owner string `json:"owner"`
	PID   int    `json:"pid"`
}

// Lock is a held writer lock on a task file.
type Lock struct {
	path  string
	owner string
}

// LockPath returns the lock file path for the task file.
func (f *File) LockPath() string {
	return f.path + lockSuffix
}

// Lock takes the writer lock for the task file.
// It fails with ErrLocked when another invocation holds it. A lock left by a
// crashed process must be removed by hand; the error names the file.
func (f *File) Lock() (*Lock, error) {
	owner, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("lock task file: owner token: %w", err)
	}

	path := f.LockPath()
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("%w (remove %s if no other todo is running)", ErrLocked, path)
	}
	if err != nil {
		return nil, fmt.Errorf("lock task file: %w", err)
	}

	l := &Lock{path: path, owner: owner.String()}
	encErr := json.NewEncoder(fh).Encode(lockInfo{Owner: l.owner, PID: os.Getpid()})
	closeErr := fh.Close()
	if err := errors.Join(encErr, closeErr); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("lock task file: %w", err)
	}

	slog.Debug("lock acquired", "path", path, "owner", l.owner)
	return l, nil
}

// Owner returns the token written into the lock file.
func (l *Lock) Owner() string {
	return l.owner
}

// Release removes the lock file if it still belongs to this lock.
// Releasing twice is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.path == "" {
		return nil
	}
	path := l.path
	l.path = ""

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("release lock: %w", err)
	}

	var info lockInfo
	if err := json.Unmarshal(data, &info); err != nil || info.Owner != l.owner {
		slog.Warn("lock file changed owner, leaving it", "path", path)
		return nil
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("release lock: %w", err)
	}
	slog.Debug("lock released", "path", path, "owner", l.owner)
	return nil
}
