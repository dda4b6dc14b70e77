package store

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/todo/internal/testutil"
)

func TestLock_Exclusive(t *testing.T) {
	f := Open(testutil.TaskFilePath(t))

	first, err := f.Lock()
	require.NoError(t, err)

	_, err = f.Lock()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocked)
	assert.Contains(t, err.Error(), f.LockPath())

	require.NoError(t, first.Release())

	second, err := f.Lock()
	require.NoError(t, err)
	require.NoError(t, second.Release())
}

func TestLock_FileContent(t *testing.T) {
	f := Open(testutil.TaskFilePath(t))

	l, err := f.Lock()
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Release() })

	data, err := os.ReadFile(f.LockPath())
	require.NoError(t, err)

	var info lockInfo
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, l.Owner(), info.Owner)
	assert.Equal(t, os.Getpid(), info.PID)

	id, err := uuid.Parse(info.Owner)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestLock_ReleaseTwice(t *testing.T) {
	f := Open(testutil.TaskFilePath(t))

	l, err := f.Lock()
	require.NoError(t, err)
	require.NoError(t, l.Release())
	require.NoError(t, l.Release())

	_, err = os.Stat(f.LockPath())
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLock_ReleaseKeepsForeignLock(t *testing.T) {
	f := Open(testutil.TaskFilePath(t))

	l, err := f.Lock()
	require.NoError(t, err)

	// Someone removed our lock by hand and another process took it.
	foreign := `{"owner":"someone-else","pid":1}` + "\n"
	require.NoError(t, os.WriteFile(f.LockPath(), []byte(foreign), 0o644))

	require.NoError(t, l.Release())

	data, err := os.ReadFile(f.LockPath())
	require.NoError(t, err)
	assert.Equal(t, foreign, string(data))
}

func TestLock_NilRelease(t *testing.T) {
	var l *Lock
	assert.NoError(t, l.Release())
}
