// Package state persists the timer state across CLI invocations.
// Each invocation loads the file, applies one action and saves it back.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fasttrack/fasttrack/internal/foundation"
	"github.com/fasttrack/fasttrack/internal/fsutil"
	"github.com/fasttrack/fasttrack/internal/isotime"
	"github.com/fasttrack/fasttrack/internal/timer"
)

// StateFileName is the name of the file that stores the active fast.
const StateFileName = "fasting_tracker_data.json"

// ErrCorruptState is returned when the state file exists but cannot be
// decoded or violates the timer invariants.
var ErrCorruptState = errors.New("corrupt state file")

// CorruptStateError carries the path of the file that failed to load.
type CorruptStateError struct {
	Path  string
	Cause error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("state file %s is corrupt: %v", e.Path, e.Cause)
}

// Unwrap lets errors.Is match both ErrCorruptState and the cause.
func (e *CorruptStateError) Unwrap() []error {
	return []error{ErrCorruptState, e.Cause}
}

// fileState is the on-disk representation.
type fileState struct {
	StartTime          *string `json:"start_time"`
	PauseTime          *string `json:"pause_time"`
	TotalPauseDuration float64 `json:"total_pause_duration"`
}

// Repository loads and saves the timer state file in a data directory.
type Repository struct {
	dir string
}

// NewRepository returns a Repository rooted at dataDir.
func NewRepository(dataDir string) *Repository {
	return &Repository{dir: dataDir}
}

// Path returns the location of the state file.
func (r *Repository) Path() string {
	return filepath.Join(r.dir, StateFileName)
}

// Load reads the timer state. A missing or empty file yields an empty
// state with no active fast.
func (r *Repository) Load() (*timer.State, error) {
	path := r.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &timer.State{}, nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return &timer.State{}, nil
	}

	st, err := Decode(data)
	if err != nil {
		return nil, &CorruptStateError{Path: path, Cause: err}
	}
	return st, nil
}

// Save writes st atomically, creating the data directory if needed.
func (r *Repository) Save(st *timer.State) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("refusing to save state: %w", err)
	}

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := Encode(st)
	if err != nil {
		return err
	}

	if err := fsutil.WriteFileAtomic(r.Path(), data, 0644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}

// Encode renders st in the state file format.
func Encode(st *timer.State) ([]byte, error) {
	fs := fileState{
		StartTime:          formatOptional(st.StartTime),
		PauseTime:          formatOptional(st.PauseTime),
		TotalPauseDuration: st.TotalPause.Seconds(),
	}

	data, err := json.MarshalIndent(fs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling state: %w", err)
	}
	return data, nil
}

// Decode parses the state file format and checks the timer invariants.
func Decode(data []byte) (*timer.State, error) {
	var fs fileState
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("decoding state: %w", err)
	}

	start, err := parseOptional(fs.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start_time: %w", err)
	}
	pause, err := parseOptional(fs.PauseTime)
	if err != nil {
		return nil, fmt.Errorf("pause_time: %w", err)
	}

	if math.IsNaN(fs.TotalPauseDuration) || math.IsInf(fs.TotalPauseDuration, 0) {
		return nil, fmt.Errorf("total_pause_duration: not a finite number")
	}

	st := &timer.State{
		StartTime:  start,
		PauseTime:  pause,
		TotalPause: time.Duration(fs.TotalPauseDuration * float64(time.Second)).Round(time.Microsecond),
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return st, nil
}

func formatOptional(t foundation.Option[time.Time]) *string {
	return foundation.MapOption(t, isotime.Format).ToPointer()
}

// parseOptional treats null and "" as absent, matching files where the
// field was written as a falsy value.
func parseOptional(s *string) (foundation.Option[time.Time], error) {
	raw := foundation.FromPointer(s)
	if raw.IsNone() || strings.TrimSpace(raw.Unwrap()) == "" {
		return foundation.None[time.Time](), nil
	}

	t, err := isotime.Parse(raw.Unwrap())
	if err != nil {
		return foundation.None[time.Time](), err
	}
	return foundation.Some(t), nil
}
