package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/todo/internal/task"
)

// DefaultPath is the task file used when no path is given.
const DefaultPath = "tasks.json"

// currentSchemaVersion is the schema_version written by Save.
const currentSchemaVersion = 1

// layout is the on-disk form of a store.
type layout struct {
	SchemaVersion int         `json:"schema_version"`
	NextID        int         `json:"next_id"`
	Tasks         []task.Task `json:"tasks"`
}

// File is the task file backing a task.Store.
type File struct {
	path string
}

// Open returns the task file at path. The file need not exist.
func Open(path string) *File {
	if path == "" {
		path = DefaultPath
	}
	return &File{path: path}
}

// Path returns the task file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the task file into a new store.
// A missing or blank file yields an empty store.
func (f *File) Load() (*task.Store, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("task file not found, starting empty", "path", f.path)
		return task.New(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	s, err := decode(f.path, data)
	if err != nil {
		return nil, err
	}
	slog.Debug("task file loaded", "path", f.path, "bytes", len(data), "tasks", s.Len())
	return s, nil
}

// Save replaces the task file with the full content of s.
func (f *File) Save(s *task.Store) error {
	data, err := encode(s)
	if err != nil {
		return fmt.Errorf("marshal task file: %w", err)
	}

	if err := writeFileAtomic(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	slog.Debug("task file saved", "path", f.path, "bytes", len(data), "tasks", s.Len())
	return nil
}

func decode(path string, data []byte) (*task.Store, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return task.New(nil), nil
	}

	if trimmed[0] == '[' {
		if err := validate(defLegacy, path, trimmed); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		var tasks []task.Task
		if err := strictUnmarshal(trimmed, &tasks); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		slog.Debug("legacy task file layout", "path", path)
		return task.New(tasks), nil
	}

	if err := validate(defFile, path, trimmed); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	var l layout
	if err := strictUnmarshal(trimmed, &l); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return task.Restore(l.Tasks, l.NextID), nil
}

func encode(s *task.Store) ([]byte, error) {
	tasks := s.Tasks()
	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(layout{
		SchemaVersion: currentSchemaVersion,
		NextID:        s.NextID(),
		Tasks:         tasks,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if dec.More() {
		return errors.New("decode: trailing data after JSON value")
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path, then renames it
// over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
