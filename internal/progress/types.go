// Package progress provides the spinner shown while an invocation waits
// for another one to release the data lock.
package progress

// TerminalCapabilities is what the wait indicator needs to know about its
// output.
type TerminalCapabilities struct {
	// IsTTY selects the animated spinner over a single printed line.
	IsTTY bool
	// SupportsUnicode selects the braille spinner frames.
	SupportsUnicode bool
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
