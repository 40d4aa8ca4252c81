package cli

import (
	"github.com/fasttrack/fasttrack/internal/cli/shared"
)

// Exit codes for the fasttrack CLI (re-exported from shared)
const (
	// ExitSuccess covers every recognised action, including no-ops
	ExitSuccess = shared.ExitSuccess

	// ExitFailure indicates configuration problems or interruption
	ExitFailure = shared.ExitFailure

	// ExitInvalidArguments indicates an unknown action or malformed flag
	ExitInvalidArguments = shared.ExitInvalidArguments

	// ExitLockTimeout indicates another invocation held the data lock too long
	ExitLockTimeout = shared.ExitLockTimeout

	// ExitStorageError indicates the state or history files could not be used
	ExitStorageError = shared.ExitStorageError
)

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}
