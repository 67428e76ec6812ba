package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/afero"

	"github.com/inovacc/cvehunt/internal/encoding"
)

// ErrMalformedState marks a state file that exists but cannot be parsed
var ErrMalformedState = errors.New("malformed search state")

type stateFile struct {
	LastSearchTime string `json:"last_search_time"`
}

// SearchState persists the time of the last "new CVE" search
type SearchState struct {
	fs     afero.Fs
	path   string
	logger *slog.Logger
}

// NewSearchState creates a state store backed by the file at path
func NewSearchState(fs afero.Fs, path string, logger *slog.Logger) *SearchState {
	if logger == nil {
		logger = slog.Default()
	}

	return &SearchState{fs: fs, path: path, logger: logger}
}

// Path returns the state file location
func (s *SearchState) Path() string {
	return s.path
}

// Exists reports whether the state file is present
func (s *SearchState) Exists() bool {
	return encoding.FileExists(s.fs, s.path)
}

// Load returns the persisted time. ok is false when no state file exists.
// A file that cannot be parsed returns an error wrapping ErrMalformedState.
func (s *SearchState) Load() (t time.Time, ok bool, err error) {
	data, err := encoding.ReadFile(s.fs, s.path)
	if err != nil {
		return time.Time{}, false, err
	}

	if data == nil {
		return time.Time{}, false, nil
	}

	state, err := encoding.ParseJSON[stateFile](data)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %s: %v", ErrMalformedState, s.path, err)
	}

	if state.LastSearchTime == "" {
		return time.Time{}, false, fmt.Errorf("%w: %s: last_search_time missing", ErrMalformedState, s.path)
	}

	t, err = parseTimestamp(state.LastSearchTime)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %s: %v", ErrMalformedState, s.path, err)
	}

	return t, true, nil
}

// Save overwrites the state file with t
func (s *SearchState) Save(t time.Time) error {
	state := stateFile{LastSearchTime: t.Format(time.RFC3339Nano)}

	if err := encoding.SaveJSON(s.fs, s.path, state, 0644); err != nil {
		return err
	}

	s.logger.Debug("search state saved", slog.String("path", s.path), slog.Time("last_search_time", t))

	return nil
}

// Delete removes the state file
func (s *SearchState) Delete() error {
	if err := s.fs.Remove(s.path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", s.path, err)
	}

	return nil
}

// Rename moves the state file to name. Relative names are resolved next to
// the current state file. Returns the new path.
func (s *SearchState) Rename(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("new name is empty")
	}

	target := name
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(s.path), name)
	}

	if _, err := s.fs.Stat(target); err == nil {
		return "", fmt.Errorf("failed to rename %s: %s: %w", s.path, target, os.ErrExist)
	}

	if err := s.fs.Rename(s.path, target); err != nil {
		return "", fmt.Errorf("failed to rename %s: %w", s.path, err)
	}

	return target, nil
}

// parseTimestamp accepts RFC 3339 and zone-less ISO 8601 timestamps. The
// latter are interpreted in local time.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	return dateparse.ParseLocal(value)
}
