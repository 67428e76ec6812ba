package application

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "cvehunt"

	// SettingsFileName holds the persisted GitHub token
	SettingsFileName = "settings.json"

	// StateFileName holds the time of the last "new CVE" search
	StateFileName = "last_search.json"

	// HistoryFileName is the bbolt database of cloned repositories
	HistoryFileName = "history.bolt"
)

// SettingsPath returns the default settings file location.
// Linux: ~/.config/cvehunt/settings.json
func SettingsPath() (string, error) {
	return resolve(xdg.ConfigFile, SettingsFileName)
}

// StatePath returns the default search-state file location.
// Linux: ~/.local/state/cvehunt/last_search.json
func StatePath() (string, error) {
	return resolve(xdg.StateFile, StateFileName)
}

// HistoryPath returns the default clone history database location.
// Linux: ~/.local/share/cvehunt/history.bolt
func HistoryPath() (string, error) {
	return resolve(xdg.DataFile, HistoryFileName)
}

// resolve asks xdg for a path inside the application directory. xdg creates
// the parent directories as a side effect.
func resolve(fn func(string) (string, error), name string) (string, error) {
	path, err := fn(filepath.Join(AppName, name))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s location: %w", name, err)
	}

	return path, nil
}
