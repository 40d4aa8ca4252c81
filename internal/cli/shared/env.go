package shared

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fasttrack/fasttrack/internal/config"
	"github.com/fasttrack/fasttrack/internal/logging"
	"github.com/fasttrack/fasttrack/internal/progress"
	"github.com/fasttrack/fasttrack/internal/timer"
	"github.com/fasttrack/fasttrack/internal/tracker"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Persistent flag names defined on the root command.
const (
	FlagConfig  = "config"
	FlagDataDir = "data-dir"
	FlagDebug   = "debug"
	FlagNoColor = "no-color"
)

// Env is everything a command needs for one invocation.
type Env struct {
	Config  *config.Configuration
	Logger  *slog.Logger
	Tracker *tracker.Tracker

	closers []io.Closer
}

// EnvOptions adjusts how an Env is assembled.
type EnvOptions struct {
	// Clock overrides the wall clock.
	Clock timer.Clock
	// Logger overrides the log file logger.
	Logger *slog.Logger
	// WaitOutput receives the lock-wait indicator. Defaults to stderr.
	WaitOutput *os.File
}

// LoadEnv loads configuration for cmd, applies the persistent flag
// overrides and builds the Env.
func LoadEnv(cmd *cobra.Command) (*Env, error) {
	configPath, _ := cmd.Flags().GetString(FlagConfig)

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, WithExitCode(err, ExitFailure)
	}

	if cmd.Flags().Changed(FlagDataDir) {
		cfg.DataDir, _ = cmd.Flags().GetString(FlagDataDir)
	}
	if debug, _ := cmd.Flags().GetBool(FlagDebug); debug {
		cfg.LogLevel = "debug"
	}
	if noColor, _ := cmd.Flags().GetBool(FlagNoColor); noColor {
		cfg.Color = false
	}

	return NewEnv(cfg, EnvOptions{})
}

// NewEnv builds an Env from an already loaded configuration.
func NewEnv(cfg *config.Configuration, opts EnvOptions) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, WithExitCode(err, ExitFailure)
	}

	if !cfg.Color {
		color.NoColor = true
	}

	env := &Env{Config: cfg, Logger: opts.Logger}

	if env.Logger == nil {
		logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			logger = logging.Discard()
		} else {
			env.closers = append(env.closers, closer)
		}
		env.Logger = logger
	}

	waitOut := opts.WaitOutput
	if waitOut == nil {
		waitOut = os.Stderr
	}
	indicator := progress.NewWaitIndicator(progress.DetectTerminalCapabilities(waitOut), waitOut)

	env.Tracker = tracker.New(tracker.Options{
		DataDir:        cfg.DataDir,
		Clock:          opts.Clock,
		Logger:         env.Logger,
		LockTimeout:    cfg.LockWait(),
		OnLockWait:     func() { indicator.Start("Waiting for another fasttrack command to finish...") },
		OnLockAcquired: indicator.Stop,
	})

	return env, nil
}

// Close releases the log file.
func (e *Env) Close() {
	for _, c := range e.closers {
		_ = c.Close()
	}
	e.closers = nil
}

// CommandContext returns the command's context, or a background context
// when the command is run outside Execute.
func CommandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
