// Package tracker runs timer operations as single load-mutate-save
// transactions over the data directory.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fasttrack/fasttrack/internal/foundation"
	"github.com/fasttrack/fasttrack/internal/history"
	"github.com/fasttrack/fasttrack/internal/lock"
	"github.com/fasttrack/fasttrack/internal/logging"
	"github.com/fasttrack/fasttrack/internal/state"
	"github.com/fasttrack/fasttrack/internal/timer"
)

// DefaultLockTimeout bounds how long an invocation waits for another one.
const DefaultLockTimeout = 5 * time.Second

// Options configures a Tracker.
type Options struct {
	// DataDir holds the state, history and lock files.
	DataDir string
	// Clock overrides the wall clock, mainly for tests.
	Clock timer.Clock
	// Logger receives debug diagnostics. Nil discards them.
	Logger *slog.Logger
	// LockTimeout bounds the wait for the data directory lock.
	LockTimeout time.Duration
	// OnLockWait is called when another invocation holds the lock.
	OnLockWait func()
	// OnLockAcquired is called after a wait, once the lock is held.
	OnLockAcquired func()
}

// Tracker is the fasting timer bound to one data directory.
type Tracker struct {
	dataDir     string
	repo        *state.Repository
	store       *history.Store
	engine      *timer.Engine
	logger      *slog.Logger
	lockTimeout time.Duration
	onWait      func()
	onAcquired  func()
}

// New creates a Tracker from opts.
func New(opts Options) *Tracker {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	timeout := opts.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}

	return &Tracker{
		dataDir:     opts.DataDir,
		repo:        state.NewRepository(opts.DataDir),
		store:       history.NewStore(opts.DataDir, logger),
		engine:      timer.NewEngine(opts.Clock),
		logger:      logger,
		lockTimeout: timeout,
		onWait:      opts.OnLockWait,
		onAcquired:  opts.OnLockAcquired,
	}
}

// Start begins a fast, optionally backdated.
func (t *Tracker) Start(ctx context.Context, backdate foundation.Option[time.Duration]) (timer.Result, error) {
	return t.mutate(ctx, timer.ActionStart, func(st *timer.State) timer.Result {
		return t.engine.Start(st, backdate)
	})
}

// Stop ends the active fast, recording it in history when keep is true.
func (t *Tracker) Stop(ctx context.Context, keep bool) (timer.Result, error) {
	return t.mutate(ctx, timer.ActionStop, func(st *timer.State) timer.Result {
		return t.engine.Stop(st, keep)
	})
}

// Pause pauses the active fast.
func (t *Tracker) Pause(ctx context.Context) (timer.Result, error) {
	return t.mutate(ctx, timer.ActionPause, t.engine.Pause)
}

// Resume resumes a paused fast.
func (t *Tracker) Resume(ctx context.Context) (timer.Result, error) {
	return t.mutate(ctx, timer.ActionResume, t.engine.Resume)
}

// Status reports the current fast without modifying anything.
func (t *Tracker) Status(ctx context.Context) (timer.Status, error) {
	var status timer.Status
	err := t.withLock(ctx, func() error {
		st, err := t.repo.Load()
		if err != nil {
			return err
		}
		status = t.engine.Status(st)
		return nil
	})
	if err != nil {
		return timer.Status{}, err
	}

	t.logger.Debug("status",
		logging.Action(string(timer.ActionStatus)),
		slog.Bool("active", status.Active),
		slog.Bool("paused", status.Paused),
		logging.Duration(status.Duration))
	return status, nil
}

// History returns completed fasts, most recent first. A positive limit
// caps the number returned.
func (t *Tracker) History(ctx context.Context, limit int) ([]history.CompletedFast, error) {
	var fasts []history.CompletedFast
	err := t.withLock(ctx, func() error {
		var err error
		fasts, err = t.store.List(limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	t.logger.Debug("history listed", slog.Int("limit", limit), slog.Int("count", len(fasts)))
	return fasts, nil
}

// mutate runs op against the persisted state. Only applied results are
// written back; a kept stop appends to history before the state is cleared
// on disk.
func (t *Tracker) mutate(ctx context.Context, action timer.Action, op func(*timer.State) timer.Result) (timer.Result, error) {
	var result timer.Result

	err := t.withLock(ctx, func() error {
		st, err := t.repo.Load()
		if err != nil {
			return err
		}

		result = op(st)
		if !result.Changed() {
			return nil
		}

		if fast, ok := result.Completed.Get(); ok {
			if err := t.store.Append(fast); err != nil {
				return fmt.Errorf("recording completed fast: %w", err)
			}
		}

		if err := t.repo.Save(st); err != nil {
			return fmt.Errorf("saving state: %w", err)
		}
		return nil
	})
	if err != nil {
		t.logger.Error("action failed", logging.Action(string(action)), logging.Error(err))
		return timer.Result{}, err
	}

	t.logger.Debug("action finished",
		logging.Action(string(action)),
		logging.Outcome(result.Outcome.String()),
		logging.Reason(string(result.Reason)),
		logging.Duration(result.Duration))
	return result, nil
}

func (t *Tracker) withLock(ctx context.Context, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, t.lockTimeout)
	defer cancel()

	waited := false
	l, err := lock.Acquire(ctx, t.dataDir, lock.Options{
		OnWait: func() {
			waited = true
			t.logger.Debug("waiting for lock", logging.Path(t.dataDir))
			if t.onWait != nil {
				t.onWait()
			}
		},
	})
	if waited && t.onAcquired != nil {
		t.onAcquired()
	}
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			t.logger.Warn("releasing lock", logging.Path(l.Path()), logging.Error(err))
		}
	}()

	return fn()
}
