// Package state tests loading and saving the timer state file.
// Related: internal/state/state.go
// Tags: state, persistence, json, corruption, round-trip

package state

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fasttrack/fasttrack/internal/foundation"
	"github.com/fasttrack/fasttrack/internal/testutil"
	"github.com/fasttrack/fasttrack/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	repo := NewRepository(t.TempDir())

	st, err := repo.Load()
	require.NoError(t, err)
	assert.False(t, st.Active())
	assert.False(t, st.Paused())
	assert.Zero(t, st.TotalPause)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	start := testutil.Date(2024, time.January, 2, 20, 15, 30).Add(123456 * time.Microsecond)
	pause := start.Add(10 * time.Hour)

	tests := map[string]*timer.State{
		"empty": {},
		"running": {
			StartTime: foundation.Some(start),
		},
		"paused with history of pauses": {
			StartTime:  foundation.Some(start),
			PauseTime:  foundation.Some(pause),
			TotalPause: 42*time.Minute + 1500*time.Millisecond,
		},
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			repo := NewRepository(t.TempDir())
			require.NoError(t, repo.Save(want))

			got, err := repo.Load()
			require.NoError(t, err)

			assertSameTime(t, want.StartTime, got.StartTime)
			assertSameTime(t, want.PauseTime, got.PauseTime)
			assert.Equal(t, want.TotalPause, got.TotalPause)
		})
	}
}

func assertSameTime(t *testing.T, want, got foundation.Option[time.Time]) {
	t.Helper()

	require.Equal(t, want.IsSome(), got.IsSome())
	if want.IsSome() {
		assert.True(t, want.Unwrap().Equal(got.Unwrap()), "want %s, got %s", want.Unwrap(), got.Unwrap())
	}
}

func TestSave_FileFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo := NewRepository(dir)
	start := testutil.Date(2024, time.January, 2, 20, 15, 30)

	require.NoError(t, repo.Save(&timer.State{StartTime: foundation.Some(start), TotalPause: 90 * time.Second}))

	content := testutil.ReadFile(t, dir, StateFileName)
	assert.Contains(t, content, `"start_time": "2024-01-02T20:15:30.000000"`)
	assert.Contains(t, content, `"pause_time": null`)
	assert.Contains(t, content, `"total_pause_duration": 90`)
}

func TestLoad_OriginalFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content    string
		wantActive bool
		wantPaused bool
		wantPause  time.Duration
	}{
		"cleared after stop": {
			content: `{"start_time": null, "pause_time": null, "total_pause_duration": 0.0}`,
		},
		"running with microseconds": {
			content:    `{"start_time": "2024-01-02T20:15:30.123456", "pause_time": null, "total_pause_duration": 12.5}`,
			wantActive: true,
			wantPause:  12500 * time.Millisecond,
		},
		"paused without fraction": {
			content:    `{"start_time": "2024-01-02T20:15:30", "pause_time": "2024-01-03T06:00:00", "total_pause_duration": 0}`,
			wantActive: true,
			wantPaused: true,
		},
		"rfc3339 with offset": {
			content:    `{"start_time": "2024-01-02T20:15:30+02:00", "pause_time": null, "total_pause_duration": 0}`,
			wantActive: true,
		},
		"empty strings mean absent": {
			content: `{"start_time": "", "pause_time": "", "total_pause_duration": 0}`,
		},
		"empty file": {
			content: ``,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			testutil.WriteFile(t, dir, StateFileName, tc.content)

			st, err := NewRepository(dir).Load()
			require.NoError(t, err)
			assert.Equal(t, tc.wantActive, st.Active())
			assert.Equal(t, tc.wantPaused, st.Paused())
			assert.Equal(t, tc.wantPause, st.TotalPause)
		})
	}
}

func TestLoad_CorruptState(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"invalid json":          `{not json`,
		"bad timestamp":         `{"start_time": "yesterday", "pause_time": null, "total_pause_duration": 0}`,
		"pause without start":   `{"start_time": null, "pause_time": "2024-01-03T06:00:00", "total_pause_duration": 0}`,
		"negative pause":        `{"start_time": "2024-01-02T20:15:30", "pause_time": null, "total_pause_duration": -3}`,
		"wrong type for number": `{"start_time": null, "pause_time": null, "total_pause_duration": "zero"}`,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			path := testutil.WriteFile(t, dir, StateFileName, content)

			_, err := NewRepository(dir).Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptState)

			var corrupt *CorruptStateError
			require.True(t, errors.As(err, &corrupt))
			assert.Equal(t, path, corrupt.Path)
			assert.Contains(t, err.Error(), "is corrupt")

			// File is left for the user to repair
			assert.Equal(t, content, testutil.ReadFile(t, dir, StateFileName))
		})
	}
}

func TestSave_RejectsInvalidState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo := NewRepository(dir)

	err := repo.Save(&timer.State{PauseTime: foundation.Some(time.Now())})
	require.Error(t, err)
	assert.ErrorIs(t, err, timer.ErrInvalidState)

	_, statErr := os.Stat(filepath.Join(dir, StateFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_CreatesDataDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	repo := NewRepository(dir)

	require.NoError(t, repo.Save(&timer.State{}))
	assert.FileExists(t, repo.Path())
}
