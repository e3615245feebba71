package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

func CreatePidFile(path string) error {
	if pid, running, err := IsRunning(path); err == nil && running {
		return fmt.Errorf("pidfile: process with pid %d already exists", pid)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("pidfile: could not create directory: %w", err)
	}

	pid := os.Getpid()
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("pidfile: could not write pid file: %w", err)
	}

	return nil
}

func RemovePidFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("pidfile: could not remove pid file: %w", err)
	}
	return nil
}

func ReadPid(path string) (int, error) {
	pidBytes, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("pidfile: could not read pid file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(pidBytes)))
	if err != nil {
		return 0, fmt.Errorf("pidfile: could not parse pid: %w", err)
	}

	return pid, nil
}

// IsRunning reports whether the process recorded at path is alive. A
// missing pid file means nothing runs.
func IsRunning(path string) (int, bool, error) {
	pid, err := ReadPid(path)

	if errors.Is(err, os.ErrNotExist) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, err
	}

	// Sending signal 0 to a process checks if it exists without killing it.
	return pid, signal(pid, syscall.Signal(0)) == nil, nil
}

// SignalPid sends sig to the process recorded at path.
func SignalPid(path string, sig syscall.Signal) (int, error) {
	pid, err := ReadPid(path)
	if err != nil {
		return 0, err
	}

	if err := signal(pid, sig); err != nil {
		return pid, fmt.Errorf("pidfile: could not signal pid %d: %w", pid, err)
	}

	return pid, nil
}

func signal(pid int, sig syscall.Signal) error {
	// On Unix systems, FindProcess always succeeds.
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}

	return process.Signal(sig)
}
