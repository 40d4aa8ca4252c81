package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// WaitIndicator shows that the command is blocked on something outside its
// control. On a terminal it animates a spinner; otherwise it prints the
// message once.
type WaitIndicator struct {
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	out          io.Writer
	spinner      *spinner.Spinner
}

// NewWaitIndicator creates an indicator writing to out.
func NewWaitIndicator(caps TerminalCapabilities, out io.Writer) *WaitIndicator {
	return &WaitIndicator{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
	}
}

// Start displays msg. Calling Start while already started is a no-op.
func (w *WaitIndicator) Start(msg string) {
	if w.spinner != nil {
		return
	}

	if !w.capabilities.IsTTY {
		fmt.Fprintln(w.out, msg)
		return
	}

	w.spinner = spinner.New(
		spinner.CharSets[w.symbols.SpinnerSet],
		100*time.Millisecond,
	)
	w.spinner.Writer = w.out
	w.spinner.Suffix = " " + msg
	w.spinner.Start()
}

// Stop removes the spinner if one is running.
func (w *WaitIndicator) Stop() {
	if w.spinner != nil {
		w.spinner.Stop()
		w.spinner = nil
	}
}

// Active reports whether a spinner is currently running.
func (w *WaitIndicator) Active() bool {
	return w.spinner != nil
}
