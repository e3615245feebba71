package runner_test

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucax88x/datetoday/cmd/cli/runner"
)

func TestCreatePidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "datetoday.pid")

	require.NoError(t, runner.CreatePidFile(path))

	pid, err := runner.ReadPid(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)

	pid, running, err := runner.IsRunning(path)
	require.NoError(t, err)
	assert.True(t, running)
	assert.Equal(t, os.Getpid(), pid)

	assert.Error(t, runner.CreatePidFile(path), "a live process owns the pid file")

	require.NoError(t, runner.RemovePidFile(path))
	_, running, err = runner.IsRunning(path)
	require.NoError(t, err)
	assert.False(t, running)
}

func TestSignalPidZeroReachesSelf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datetoday.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o600))

	pid, err := runner.SignalPid(path, syscall.Signal(0))

	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
}

func TestReadPidErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := runner.ReadPid(filepath.Join(dir, "missing.pid"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(dir, "garbage.pid")
	require.NoError(t, os.WriteFile(garbage, []byte("nope"), 0o600))

	_, err = runner.ReadPid(garbage)
	assert.Error(t, err)

	_, _, err = runner.IsRunning(garbage)
	assert.Error(t, err)
}
