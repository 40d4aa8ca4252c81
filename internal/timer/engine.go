package timer

import (
	"time"

	"github.com/fasttrack/fasttrack/internal/foundation"
	"github.com/fasttrack/fasttrack/internal/history"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time { return time.Now() }

// Action names a timer operation.
type Action string

const (
	ActionStart  Action = "start"
	ActionStop   Action = "stop"
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
	ActionStatus Action = "status"
)

// Outcome tells whether an operation changed the state.
type Outcome int

const (
	// Applied means the state was mutated and must be persisted.
	Applied Outcome = iota
	// Noop means the preconditions were not met and nothing changed.
	Noop
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Noop:
		return "noop"
	default:
		return "unknown"
	}
}

// Reason explains a Noop outcome.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonAlreadyRunning     Reason = "already running"
	ReasonNotRunning         Reason = "not running"
	ReasonNotRunningOrPaused Reason = "not running or already paused"
	ReasonNotPaused          Reason = "not paused"
)

// Result is what a timer operation reports back.
type Result struct {
	Action  Action
	Outcome Outcome
	Reason  Reason
	// Duration is the elapsed active duration after the operation, or the
	// final duration for stop.
	Duration string
	// Completed is set by a stop whose record should be kept.
	Completed foundation.Option[history.CompletedFast]
	// Kept reports whether stop was asked to keep the record.
	Kept bool
}

// Changed reports whether the caller must persist the state.
func (r Result) Changed() bool {
	return r.Outcome == Applied
}

// Status describes the current fast without changing it.
type Status struct {
	Active    bool
	Paused    bool
	StartedAt foundation.Option[time.Time]
	Duration  string
}

// Engine applies timer operations to a State.
type Engine struct {
	clock Clock
}

// NewEngine returns an Engine using clock. A nil clock uses the wall clock.
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{clock: clock}
}

// Start begins a fast. A present backdate moves the start into the past by
// that amount. Starting while a fast is active is a no-op.
func (e *Engine) Start(s *State, backdate foundation.Option[time.Duration]) Result {
	if s.Active() {
		return noop(ActionStart, ReasonAlreadyRunning)
	}

	now := e.clock.Now()
	s.StartTime = foundation.Some(now.Add(-backdate.UnwrapOr(0)))
	s.PauseTime = foundation.None[time.Time]()
	s.TotalPause = 0

	return Result{
		Action:   ActionStart,
		Outcome:  Applied,
		Duration: e.currentDuration(s, now),
	}
}

// Stop ends the active fast. When keep is true the result carries the
// record to append to history. The state is cleared either way.
func (e *Engine) Stop(s *State, keep bool) Result {
	if !s.Active() {
		return noop(ActionStop, ReasonNotRunning)
	}

	now := e.clock.Now()
	duration := e.currentDuration(s, now)

	result := Result{
		Action:   ActionStop,
		Outcome:  Applied,
		Duration: duration,
		Kept:     keep,
	}
	if keep {
		result.Completed = foundation.Some(history.NewCompletedFast(now, duration))
	}

	s.Reset()
	return result
}

// Pause pauses the active fast. No-op if nothing is running or it is
// already paused.
func (e *Engine) Pause(s *State) Result {
	if !s.Active() || s.Paused() {
		return noop(ActionPause, ReasonNotRunningOrPaused)
	}

	now := e.clock.Now()
	s.PauseTime = foundation.Some(now)

	return Result{
		Action:   ActionPause,
		Outcome:  Applied,
		Duration: e.currentDuration(s, now),
	}
}

// Resume ends the current pause and adds its length to the pause total.
func (e *Engine) Resume(s *State) Result {
	pausedAt, paused := s.PauseTime.Get()
	if !paused {
		return noop(ActionResume, ReasonNotPaused)
	}

	now := e.clock.Now()
	if interval := now.Sub(pausedAt); interval > 0 {
		s.TotalPause += interval
	}
	s.PauseTime = foundation.None[time.Time]()

	return Result{
		Action:   ActionResume,
		Outcome:  Applied,
		Duration: e.currentDuration(s, now),
	}
}

// CurrentDuration returns the elapsed active duration of s as HH:MM:SS, or
// ZeroDuration when no fast is active.
func (e *Engine) CurrentDuration(s *State) string {
	return e.currentDuration(s, e.clock.Now())
}

// Status reports the state of s.
func (e *Engine) Status(s *State) Status {
	return Status{
		Active:    s.Active(),
		Paused:    s.Paused(),
		StartedAt: s.StartTime,
		Duration:  e.CurrentDuration(s),
	}
}

// Elapsed is the active duration of s measured at now, pauses excluded.
// While paused the clock stops at the pause time.
func Elapsed(s *State, now time.Time) time.Duration {
	start, ok := s.StartTime.Get()
	if !ok {
		return 0
	}
	end := s.PauseTime.UnwrapOr(now)
	elapsed := end.Sub(start) - s.TotalPause
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (e *Engine) currentDuration(s *State, now time.Time) string {
	if !s.Active() {
		return ZeroDuration
	}
	return FormatDuration(Elapsed(s, now))
}

func noop(action Action, reason Reason) Result {
	return Result{
		Action:  action,
		Outcome: Noop,
		Reason:  reason,
	}
}
