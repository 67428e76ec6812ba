package store

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const statePath = "/home/op/.local/state/cvehunt/last_search.json"

func TestSearchState_LoadMissing(t *testing.T) {
	s := NewSearchState(afero.NewMemMapFs(), statePath, nil)

	require.False(t, s.Exists())

	_, ok, err := s.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSearchState_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
	}{
		{name: "utc", t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "nanoseconds", t: time.Date(2023, 12, 31, 23, 59, 59, 123456789, time.UTC)},
		{name: "offset", t: time.Date(2024, 6, 1, 12, 30, 0, 0, time.FixedZone("X", 5*3600+1800))},
		{name: "now", t: time.Now()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSearchState(afero.NewMemMapFs(), statePath, nil)

			require.NoError(t, s.Save(tt.t))

			got, ok, err := s.Load()
			require.NoError(t, err)
			require.True(t, ok)
			require.True(t, tt.t.Equal(got), "got %v, want %v", got, tt.t)
		})
	}
}

func TestSearchState_SaveIdempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewSearchState(fs, statePath, nil)
	ts := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	require.NoError(t, s.Save(ts))
	first, err := afero.ReadFile(fs, statePath)
	require.NoError(t, err)

	require.NoError(t, s.Save(ts))
	second, err := afero.ReadFile(fs, statePath)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.JSONEq(t, `{"last_search_time": "2024-03-04T05:06:07Z"}`, string(second))
}

func TestSearchState_LoadZonelessTimestamp(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, statePath, []byte(`{"last_search_time": "2024-01-01T00:00:00"}`), 0644))

	got, ok, err := NewSearchState(fs, statePath, nil).Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local).Equal(got), "got %v", got)
}

func TestSearchState_LoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid json", content: `{"last_search_time":`},
		{name: "missing key", content: `{"other": 1}`},
		{name: "bad timestamp", content: `{"last_search_time": "not a time"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, statePath, []byte(tt.content), 0644))

			_, ok, err := NewSearchState(fs, statePath, nil).Load()
			require.ErrorIs(t, err, ErrMalformedState)
			require.False(t, ok)
		})
	}
}

func TestSearchState_Delete(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewSearchState(fs, statePath, nil)
	require.NoError(t, s.Save(time.Now()))

	require.NoError(t, s.Delete())
	require.False(t, s.Exists())
	require.Error(t, s.Delete())
}

func TestSearchState_Rename(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewSearchState(fs, statePath, nil)
	require.NoError(t, s.Save(time.Now()))

	target, err := s.Rename("old_search.json")
	require.NoError(t, err)
	require.Equal(t, "/home/op/.local/state/cvehunt/old_search.json", target)
	require.False(t, s.Exists())

	exists, err := afero.Exists(fs, target)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestSearchState_RenameAbsoluteAndConflicts(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewSearchState(fs, statePath, nil)
	require.NoError(t, s.Save(time.Now()))
	require.NoError(t, afero.WriteFile(fs, "/tmp/taken.json", []byte("{}"), 0644))

	_, err := s.Rename("")
	require.Error(t, err)

	_, err = s.Rename("/tmp/taken.json")
	require.Error(t, err)
	require.True(t, s.Exists())

	target, err := s.Rename("/tmp/backup.json")
	require.NoError(t, err)
	require.Equal(t, "/tmp/backup.json", target)
}
