package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fasttrack/fasttrack/internal/history"
	"github.com/fasttrack/fasttrack/internal/lock"
	"github.com/fasttrack/fasttrack/internal/state"
	"github.com/fasttrack/fasttrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh root command against dataDir with HOME isolated.
func run(t *testing.T, dataDir string, args ...string) (string, int) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--data-dir", dataDir, "--no-color"))

	err := cmd.Execute()
	return out.String(), ExitCode(err)
}

func setup(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return filepath.Join(home, "data")
}

func TestActions(t *testing.T) {
	dataDir := setup(t)

	out, code := run(t, dataDir, "start", "--duration", "01:30")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "Fasting timer started. Current duration: 01:30:00")

	out, code = run(t, dataDir, "start")
	assert.Equal(t, ExitSuccess, code, "no-op still succeeds")
	assert.Contains(t, out, "Timer is already running")

	out, code = run(t, dataDir, "pause")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "paused")

	out, code = run(t, dataDir, "status")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "State: paused")

	out, code = run(t, dataDir, "resume")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "resumed")

	out, code = run(t, dataDir, "stop")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "stopped and stored")

	out, code = run(t, dataDir, "history", "--format", "json")
	assert.Equal(t, ExitSuccess, code)
	var fasts []history.CompletedFast
	require.NoError(t, json.Unmarshal([]byte(out), &fasts))
	require.Len(t, fasts, 1)

	out, code = run(t, dataDir, "status")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "No timer is running")
}

func TestExitCodes(t *testing.T) {
	tests := map[string]struct {
		args []string
		want int
	}{
		"unknown action":     {args: []string{"bogus"}, want: ExitInvalidArguments},
		"malformed backdate": {args: []string{"start", "--duration", "abc"}, want: ExitInvalidArguments},
		"unknown flag":       {args: []string{"stop", "--forever"}, want: ExitInvalidArguments},
		"extra argument":     {args: []string{"status", "now"}, want: ExitInvalidArguments},
		"negative limit":     {args: []string{"history", "--limit", "-2"}, want: ExitInvalidArguments},
		"stop with nothing":  {args: []string{"stop"}, want: ExitSuccess},
		"version":            {args: []string{"version", "--plain"}, want: ExitSuccess},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			dataDir := setup(t)
			_, code := run(t, dataDir, tc.args...)
			assert.Equal(t, tc.want, code)
		})
	}
}

func TestNoAction(t *testing.T) {
	setup(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Equal(t, ExitInvalidArguments, ExitCode(cmd.Execute()))
}

func TestMalformedBackdateLeavesNoState(t *testing.T) {
	dataDir := setup(t)

	_, code := run(t, dataDir, "start", "--duration", "1:2:3")
	assert.Equal(t, ExitInvalidArguments, code)
	assert.Empty(t, testutil.ReadFile(t, dataDir, state.StateFileName))
}

func TestCorruptStateExitCode(t *testing.T) {
	dataDir := setup(t)
	testutil.WriteFile(t, dataDir, state.StateFileName, `{"start_time": 42}`)

	_, code := run(t, dataDir, "status")
	assert.Equal(t, ExitStorageError, code)
}

func TestCorruptHistoryExitCode(t *testing.T) {
	dataDir := setup(t)
	testutil.WriteFile(t, dataDir, history.HistoryFileName, "garbage")

	_, code := run(t, dataDir, "history")
	assert.Equal(t, ExitStorageError, code)
	assert.Equal(t, "garbage", testutil.ReadFile(t, dataDir, history.HistoryFileName))
}

func TestMissingConfigFile(t *testing.T) {
	dataDir := setup(t)

	_, code := run(t, dataDir, "status", "--config", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, ExitFailure, code)
}

func TestCancelledLockWaitExitCode(t *testing.T) {
	dataDir := setup(t)

	held, err := lock.Acquire(context.Background(), dataDir, lock.Options{})
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"start", "--data-dir", dataDir, "--no-color"})

	err = cmd.ExecuteContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Empty(t, testutil.ReadFile(t, dataDir, state.StateFileName))
}
