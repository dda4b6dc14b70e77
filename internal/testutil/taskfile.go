package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TaskFilePath returns a path for a task file inside a fresh temp dir.
// The file itself is not created.
func TaskFilePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "tasks.json")
}

// WriteTaskFile writes content to a task file in a fresh temp dir and
// returns its path.
func WriteTaskFile(t *testing.T, content string) string {
	t.Helper()
	path := TaskFilePath(t)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write task file: %v", err)
	}
	return path
}

// ReadTaskFile returns the content of the task file at path.
func ReadTaskFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read task file: %v", err)
	}
	return string(data)
}
