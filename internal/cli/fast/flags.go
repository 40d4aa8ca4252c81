package fast

import (
	"time"

	"github.com/fasttrack/fasttrack/internal/foundation"
	"github.com/fasttrack/fasttrack/internal/timer"
	"github.com/spf13/pflag"
)

// backdateFlag is a pflag.Value accepting HH:MM. Malformed input fails
// during flag parsing, before any command runs.
type backdateFlag struct {
	raw   string
	value foundation.Option[time.Duration]
}

var _ pflag.Value = (*backdateFlag)(nil)

func (f *backdateFlag) String() string {
	return f.raw
}

func (f *backdateFlag) Set(s string) error {
	d, err := timer.ParseBackdate(s)
	if err != nil {
		return err
	}
	f.raw = s
	f.value = foundation.Some(d)
	return nil
}

func (f *backdateFlag) Type() string {
	return "HH:MM"
}

// Value returns the parsed duration, None when the flag was not given.
func (f *backdateFlag) Value() foundation.Option[time.Duration] {
	return f.value
}
