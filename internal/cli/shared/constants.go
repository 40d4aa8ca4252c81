// Package shared provides constants and helpers used across CLI subpackages.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import (
	"context"
	"errors"
	"fmt"

	"github.com/fasttrack/fasttrack/internal/lock"
)

// Command group IDs for organizing help output
const (
	GroupTimer = "timer"
	GroupInfo  = "info"
)

// Exit codes for CLI commands
const (
	ExitSuccess          = 0
	ExitFailure          = 1
	ExitInvalidArguments = 3
	ExitLockTimeout      = 5
	ExitStorageError     = 6
)

// exitError is an error that carries an exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// WithExitCode attaches code to err. A nil err stays nil.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// UsageError marks err as a command-line usage problem.
func UsageError(err error) error {
	return WithExitCode(err, ExitInvalidArguments)
}

// Usagef formats a usage error.
func Usagef(format string, args ...any) error {
	return UsageError(fmt.Errorf(format, args...))
}

// RuntimeError classifies an error returned while executing an action.
func RuntimeError(err error) error {
	if err == nil {
		return nil
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return err
	}
	switch {
	case errors.Is(err, lock.ErrTimeout):
		return WithExitCode(fmt.Errorf("another fasttrack command is still running: %w", err), ExitLockTimeout)
	case errors.Is(err, context.Canceled):
		return WithExitCode(err, ExitFailure)
	default:
		// Corrupt state files and I/O failures
		return WithExitCode(err, ExitStorageError)
	}
}

// ExitCode returns the exit code from an error. Errors that carry no code
// come from cobra's own argument and flag handling and count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitInvalidArguments
}
