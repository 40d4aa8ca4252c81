package shared

import (
	"strings"
	"testing"
	"time"

	"github.com/fasttrack/fasttrack/internal/foundation"
	"github.com/fasttrack/fasttrack/internal/history"
	"github.com/fasttrack/fasttrack/internal/timer"
	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		res  timer.Result
		want string
	}{
		"start": {
			res:  timer.Result{Action: timer.ActionStart, Outcome: timer.Applied, Duration: "01:30:00"},
			want: "🚀 Fasting timer started. Current duration: 01:30:00",
		},
		"stop kept": {
			res:  timer.Result{Action: timer.ActionStop, Outcome: timer.Applied, Duration: "16:00:00", Kept: true},
			want: "🛑 Fasting timer stopped and stored. Total duration: 16:00:00",
		},
		"stop discarded": {
			res:  timer.Result{Action: timer.ActionStop, Outcome: timer.Applied, Duration: "00:10:00"},
			want: "🛑 Fasting timer stopped and discarded. Total duration: 00:10:00",
		},
		"pause": {
			res:  timer.Result{Action: timer.ActionPause, Outcome: timer.Applied},
			want: "⏸️  Fasting timer paused.",
		},
		"resume": {
			res:  timer.Result{Action: timer.ActionResume, Outcome: timer.Applied},
			want: "▶️  Fasting timer resumed.",
		},
		"already running": {
			res:  timer.Result{Action: timer.ActionStart, Outcome: timer.Noop, Reason: timer.ReasonAlreadyRunning},
			want: MsgAlreadyRunning,
		},
		"not running": {
			res:  timer.Result{Action: timer.ActionStop, Outcome: timer.Noop, Reason: timer.ReasonNotRunning},
			want: MsgNotRunning,
		},
		"already paused": {
			res:  timer.Result{Action: timer.ActionPause, Outcome: timer.Noop, Reason: timer.ReasonNotRunningOrPaused},
			want: MsgNotRunningOrPaused,
		},
		"not paused": {
			res:  timer.Result{Action: timer.ActionResume, Outcome: timer.Noop, Reason: timer.ReasonNotPaused},
			want: MsgNotPaused,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, FormatResult(tc.res), tc.want)
		})
	}
}

func TestFormatStatus(t *testing.T) {
	t.Parallel()

	started := time.Date(2024, time.May, 1, 20, 0, 0, 0, time.Local)

	assert.Equal(t, MsgNoStatus, FormatStatus(timer.Status{}, "2006-01-02 15:04:05"))

	out := FormatStatus(timer.Status{
		Active:    true,
		StartedAt: foundation.Some(started),
		Duration:  "02:15:00",
	}, "2006-01-02 15:04:05")
	assert.Contains(t, out, "📊 Fasting Status:")
	assert.Contains(t, out, "State: running")
	assert.Contains(t, out, "Started: 2024-05-01 20:00:00")
	assert.Contains(t, out, "Current Duration: 02:15:00")

	out = FormatStatus(timer.Status{Active: true, Paused: true, StartedAt: foundation.Some(started), Duration: "01:00:00"}, "15:04")
	assert.Contains(t, out, "State: paused")
	assert.Contains(t, out, "Started: 20:00")
}

func TestFormatHistory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MsgNoHistory, FormatHistory(nil, "2006-01-02 15:04:05"))

	out := FormatHistory([]history.CompletedFast{
		{EndTime: "2024-05-02T12:00:00.000000", Duration: "16:00:00"},
		{EndTime: "not a time", Duration: "01:00:00"},
	}, "2006-01-02 15:04:05")

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "📜 Fasting History:")
	assert.Equal(t, "1. Ended: 2024-05-02 12:00:00, Duration: 16:00:00", lines[1])
	assert.Equal(t, "2. Ended: not a time, Duration: 01:00:00", lines[2])
}
