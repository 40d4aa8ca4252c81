// Package lock provides an advisory, cross-process file lock used to
// serialize load-mutate-save cycles on the data directory.
package lock

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LockFileName is the lock file created inside the data directory.
const LockFileName = ".lock"

// DefaultRetryInterval is how often a held lock is retried.
const DefaultRetryInterval = 50 * time.Millisecond

// ErrTimeout is returned when the lock could not be acquired before the
// context deadline.
var ErrTimeout = errors.New("timed out waiting for lock")

// FileLock is an acquired lock. Release must be called exactly once.
type FileLock struct {
	path string
	file *os.File
}

// Options tunes Acquire.
type Options struct {
	// RetryInterval is the delay between attempts. Zero uses DefaultRetryInterval.
	RetryInterval time.Duration
	// OnWait is called once, the first time the lock is found held.
	OnWait func()
}

// Acquire takes an exclusive lock on dir/LockFileName, retrying until it is
// free or ctx is done. The directory is created if missing.
func Acquire(ctx context.Context, dir string, opts Options) (*FileLock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	path := filepath.Join(dir, LockFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	interval := opts.RetryInterval
	if interval <= 0 {
		interval = DefaultRetryInterval
	}

	waited := false
	for {
		ok, err := tryLock(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("locking %s: %w", path, err)
		}
		if ok {
			return &FileLock{path: path, file: f}, nil
		}

		if !waited {
			waited = true
			if opts.OnWait != nil {
				opts.OnWait()
			}
		}

		select {
		case <-ctx.Done():
			_ = f.Close()
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %s", ErrTimeout, path)
			}
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// Path returns the lock file location.
func (l *FileLock) Path() string {
	return l.path
}

// Release unlocks and closes the lock file. The file itself is left in
// place so other processes keep locking the same inode.
func (l *FileLock) Release() error {
	unlockErr := unlock(l.file)
	closeErr := l.file.Close()
	if unlockErr != nil {
		return fmt.Errorf("unlocking %s: %w", l.path, unlockErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing %s: %w", l.path, closeErr)
	}
	return nil
}
