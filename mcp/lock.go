package mcp

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// LockPath returns the lock file guarding path.
func LockPath(path string) string {
	return path + ".lock"
}

// FileLock is an exclusive, PID-stamped lock file next to a config file.
type FileLock struct {
	path string
	file *os.File
}

// AcquireLock creates the lock file for path. A lock left behind by a process
// that is no longer running is removed and acquisition retried once.
func AcquireLock(path string) (*FileLock, error) {
	return acquireLock(LockPath(path), true)
}

func acquireLock(lockPath string, retryStale bool) (*FileLock, error) {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err == nil {
		if _, werr := fmt.Fprintf(f, "%d", os.Getpid()); werr != nil {
			f.Close()
			os.Remove(lockPath)
			return nil, fmt.Errorf("failed to write lock file: %w", werr)
		}
		return &FileLock{path: lockPath, file: f}, nil
	}
	if !errors.Is(err, fs.ErrExist) {
		return nil, fmt.Errorf("failed to create lock file: %w", err)
	}

	data, readErr := os.ReadFile(lockPath)
	if readErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
	}
	pidStr := strings.TrimSpace(string(data))
	if pid, parseErr := strconv.Atoi(pidStr); parseErr == nil && retryStale && !processAlive(pid) {
		// Owner is gone. If another run got here first, the O_EXCL create decides.
		removeStale(lockPath, pidStr)
		return acquireLock(lockPath, false)
	}
	return nil, fmt.Errorf("%w (PID: %s). Remove %s if no other wpmcp is running", ErrLocked, pidStr, lockPath)
}

// removeStale deletes lockPath only while it still holds stalePID, so a lock
// freshly taken by another run is left alone.
func removeStale(lockPath, stalePID string) bool {
	data, err := os.ReadFile(lockPath)
	if err != nil || strings.TrimSpace(string(data)) != stalePID {
		return false
	}
	return os.Remove(lockPath) == nil
}

// Release closes and removes the lock file.
func (l *FileLock) Release() error {
	if l.file != nil {
		l.file.Close()
	}
	return os.Remove(l.path)
}

// processAlive reports whether pid is running, using signal 0.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
