// Package history provides storage and retrieval of completed fasts.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fasttrack/fasttrack/internal/fsutil"
	"github.com/fasttrack/fasttrack/internal/isotime"
)

const (
	// HistoryFileName is the name of the history file.
	HistoryFileName = "completed_fasts.json"
	// BackupSuffix is the suffix for backup files when corruption is detected.
	BackupSuffix = ".backup"
)

// ErrCorruptHistory is returned when the history file exists but cannot be
// decoded.
var ErrCorruptHistory = errors.New("corrupt history file")

// CorruptHistoryError carries the path of the history file that failed to load.
type CorruptHistoryError struct {
	Path  string
	Cause error
}

func (e *CorruptHistoryError) Error() string {
	return fmt.Sprintf("history file %s is corrupt: %v", e.Path, e.Cause)
}

// Unwrap lets errors.Is match both ErrCorruptHistory and the cause.
func (e *CorruptHistoryError) Unwrap() []error {
	return []error{ErrCorruptHistory, e.Cause}
}

// CompletedFast is a single finished fast. Records are never modified once
// written.
type CompletedFast struct {
	// EndTime is when the fast was stopped, as an ISO-8601 string.
	// Kept as written so ordering compares stored values directly.
	EndTime string `json:"end_time" yaml:"end_time"`
	// Duration is the active duration, pauses excluded (e.g. "16:04:12").
	Duration string `json:"duration" yaml:"duration"`
}

// NewCompletedFast builds a record for a fast that ended at end.
func NewCompletedFast(end time.Time, duration string) CompletedFast {
	return CompletedFast{
		EndTime:  isotime.Format(end),
		Duration: duration,
	}
}

// Ended parses EndTime.
func (f CompletedFast) Ended() (time.Time, error) {
	return isotime.Parse(f.EndTime)
}

// Store reads and writes the history file inside a data directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore returns a Store rooted at dataDir. A nil logger discards output.
func NewStore(dataDir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{dir: dataDir, logger: logger}
}

// Path returns the location of the history file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, HistoryFileName)
}

// Load returns every stored record in file order.
// Returns an empty slice if the file doesn't exist.
// A file that cannot be decoded yields a *CorruptHistoryError and is left
// untouched.
func (s *Store) Load() ([]CompletedFast, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []CompletedFast{}, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return []CompletedFast{}, nil
	}

	var fasts []CompletedFast
	if err := json.Unmarshal(data, &fasts); err != nil {
		return nil, &CorruptHistoryError{Path: path, Cause: err}
	}

	if fasts == nil {
		fasts = []CompletedFast{}
	}
	return fasts, nil
}

// Save writes the full list of records atomically.
// Creates the data directory if needed.
func (s *Store) Save(fasts []CompletedFast) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if fasts == nil {
		fasts = []CompletedFast{}
	}

	data, err := json.MarshalIndent(fasts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	if err := fsutil.WriteFileAtomic(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return nil
}

// Append loads the existing history, adds fast and writes the full list back.
// A corrupted file is first moved aside to a backup that never replaces an
// earlier one, and fast starts a new history.
func (s *Store) Append(fast CompletedFast) error {
	fasts, err := s.Load()
	if errors.Is(err, ErrCorruptHistory) {
		backupPath, backupErr := backupCorruptedFile(s.Path())
		if backupErr != nil {
			return fmt.Errorf("backing up corrupted history file: %w", backupErr)
		}
		s.logger.Warn("history file was corrupt, moved aside",
			slog.String("path", s.Path()),
			slog.String("backup", backupPath),
			slog.String("error", err.Error()))
		fasts, err = []CompletedFast{}, nil
	}
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	fasts = append(fasts, fast)

	if err := s.Save(fasts); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	s.logger.Debug("saved completed fast",
		slog.String("end_time", fast.EndTime),
		slog.String("duration", fast.Duration))
	return nil
}

// List returns records sorted most recent first. A positive limit caps the
// number of records returned. Storage is never modified.
func (s *Store) List(limit int) ([]CompletedFast, error) {
	fasts, err := s.Load()
	if err != nil {
		return nil, err
	}
	return SortRecent(fasts, limit), nil
}

// SortRecent orders fasts by EndTime descending and applies limit when it
// is positive. The input slice is sorted in place.
func SortRecent(fasts []CompletedFast, limit int) []CompletedFast {
	sort.SliceStable(fasts, func(i, j int) bool {
		return fasts[i].EndTime > fasts[j].EndTime
	})

	if limit > 0 && len(fasts) > limit {
		fasts = fasts[:limit]
	}
	return fasts
}

// backupCorruptedFile renames a corrupted file to path+BackupSuffix, or to
// path+BackupSuffix+".N" with the first free N when earlier backups exist.
// It returns the backup path.
func backupCorruptedFile(path string) (string, error) {
	backupPath := path + BackupSuffix
	for n := 1; ; n++ {
		if _, err := os.Lstat(backupPath); os.IsNotExist(err) {
			break
		} else if err != nil {
			return "", fmt.Errorf("checking backup %s: %w", backupPath, err)
		}
		backupPath = fmt.Sprintf("%s%s.%d", path, BackupSuffix, n)
	}

	if err := os.Rename(path, backupPath); err != nil {
		return "", fmt.Errorf("renaming corrupted file to backup: %w", err)
	}
	return backupPath, nil
}
