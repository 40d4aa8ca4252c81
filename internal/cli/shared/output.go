package shared

import (
	"fmt"
	"strings"

	"github.com/fasttrack/fasttrack/internal/history"
	"github.com/fasttrack/fasttrack/internal/timer"
	"github.com/fatih/color"
)

// Messages printed for no-op outcomes.
const (
	MsgAlreadyRunning     = "⚠️  Timer is already running. Use 'status' to check current time."
	MsgNotRunning         = "⚠️  No timer is running."
	MsgNotRunningOrPaused = "⚠️  Timer is not running or already paused."
	MsgNotPaused          = "⚠️  Timer is not paused."
	MsgNoStatus           = "ℹ️  No timer is running."
	MsgNoHistory          = "No fasting history available."
)

// FormatResult renders the outcome of a timer action.
func FormatResult(res timer.Result) string {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	if res.Outcome == timer.Noop {
		return yellow(noopMessage(res.Reason))
	}

	switch res.Action {
	case timer.ActionStart:
		return green(fmt.Sprintf("🚀 Fasting timer started. Current duration: %s", res.Duration))
	case timer.ActionStop:
		if res.Kept {
			return green(fmt.Sprintf("🛑 Fasting timer stopped and stored. Total duration: %s", res.Duration))
		}
		return green(fmt.Sprintf("🛑 Fasting timer stopped and discarded. Total duration: %s", res.Duration))
	case timer.ActionPause:
		return green("⏸️  Fasting timer paused.")
	case timer.ActionResume:
		return green("▶️  Fasting timer resumed.")
	default:
		return fmt.Sprintf("%s: done", res.Action)
	}
}

func noopMessage(reason timer.Reason) string {
	switch reason {
	case timer.ReasonAlreadyRunning:
		return MsgAlreadyRunning
	case timer.ReasonNotRunning:
		return MsgNotRunning
	case timer.ReasonNotRunningOrPaused:
		return MsgNotRunningOrPaused
	case timer.ReasonNotPaused:
		return MsgNotPaused
	default:
		return fmt.Sprintf("⚠️  Nothing to do: %s", reason)
	}
}

// FormatStatus renders the status block. timeFormat is a Go time layout.
func FormatStatus(st timer.Status, timeFormat string) string {
	if !st.Active {
		return MsgNoStatus
	}

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	state := "running ⏱️"
	if st.Paused {
		state = "paused ⏸️"
	}

	started := "-"
	if t, ok := st.StartedAt.Get(); ok {
		started = t.Format(timeFormat)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", cyan("📊 Fasting Status:"))
	fmt.Fprintf(&b, "   State: %s\n", state)
	fmt.Fprintf(&b, "   Started: %s\n", started)
	fmt.Fprintf(&b, "   Current Duration: %s", st.Duration)
	return b.String()
}

// FormatHistory renders records as a numbered list, most recent first as
// given. Unparseable end times are shown as stored.
func FormatHistory(fasts []history.CompletedFast, timeFormat string) string {
	if len(fasts) == 0 {
		return MsgNoHistory
	}

	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", cyan("📜 Fasting History:"))
	for i, fast := range fasts {
		ended := fast.EndTime
		if t, err := fast.Ended(); err == nil {
			ended = t.Format(timeFormat)
		}
		fmt.Fprintf(&b, "%d. Ended: %s, Duration: %s\n", i+1, ended, fast.Duration)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
