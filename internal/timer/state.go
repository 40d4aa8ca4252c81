// Package timer implements the fasting timer state machine.
//
// The engine operates on a State value loaded by the caller and never does
// I/O itself; persisting the result is the caller's job. Every operation
// either applies a mutation or reports a no-op with a reason, so callers
// can tell "nothing to do" apart from real failures.
package timer

import (
	"errors"
	"fmt"
	"time"

	"github.com/fasttrack/fasttrack/internal/foundation"
)

// ErrInvalidState is returned by State.Validate when the fields contradict
// each other.
var ErrInvalidState = errors.New("invalid timer state")

// State is the in-progress fast, if any.
type State struct {
	// StartTime is set while a fast is active.
	StartTime foundation.Option[time.Time]
	// PauseTime is set only while the active fast is paused.
	PauseTime foundation.Option[time.Time]
	// TotalPause accumulates every completed pause interval of the active fast.
	TotalPause time.Duration
}

// Active reports whether a fast has been started and not yet stopped.
func (s *State) Active() bool {
	return s.StartTime.IsSome()
}

// Paused reports whether the active fast is paused.
func (s *State) Paused() bool {
	return s.PauseTime.IsSome()
}

// Reset clears every field, leaving no active fast.
func (s *State) Reset() {
	*s = State{}
}

// Validate checks the invariants a persisted state must satisfy.
func (s *State) Validate() error {
	if s.PauseTime.IsSome() && s.StartTime.IsNone() {
		return fmt.Errorf("%w: pause time set without a start time", ErrInvalidState)
	}
	if s.TotalPause < 0 {
		return fmt.Errorf("%w: negative total pause duration %s", ErrInvalidState, s.TotalPause)
	}
	if s.StartTime.IsNone() && s.TotalPause != 0 {
		return fmt.Errorf("%w: pause duration recorded without a start time", ErrInvalidState)
	}
	return nil
}
