package progress

import (
	"os"

	"golang.org/x/term"
)

// Spinner frame sets from spinner.CharSets.
const (
	brailleSpinnerSet = 14
	asciiSpinnerSet   = 9
)

// DetectTerminalCapabilities reports whether f is a terminal. Setting
// FASTTRACK_ASCII=1 restricts the spinner to ASCII frames.
func DetectTerminalCapabilities(f *os.File) TerminalCapabilities {
	isTTY := term.IsTerminal(int(f.Fd()))
	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsUnicode: isTTY && os.Getenv("FASTTRACK_ASCII") != "1",
	}
}

// SelectSymbols picks the spinner frames for caps.
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if caps.SupportsUnicode {
		return ProgressSymbols{SpinnerSet: brailleSpinnerSet}
	}
	return ProgressSymbols{SpinnerSet: asciiSpinnerSet}
}
