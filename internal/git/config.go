package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// RemoteSection is a [remote "name"] block of .git/config
type RemoteSection struct {
	URL   string `ini:"url"`
	Fetch string `ini:"fetch"`
}

// Config is the subset of .git/config cvehunt reads back after a clone
type Config struct {
	Remote map[string]RemoteSection
}

// ReadConfig parses the .git/config of the repository at repoPath
func ReadConfig(repoPath string) (*Config, error) {
	path := filepath.Join(repoPath, ".git", "config")

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := &Config{Remote: make(map[string]RemoteSection)}

	for _, sec := range file.Sections() {
		name, ok := remoteName(sec.Name())
		if !ok || !sec.HasKey("url") {
			continue
		}

		var remote RemoteSection
		if err := sec.MapTo(&remote); err != nil {
			return nil, fmt.Errorf("failed to parse remote %q: %w", name, err)
		}

		cfg.Remote[name] = remote
	}

	return cfg, nil
}

// RemoteOrigin returns the URL of the origin remote
func RemoteOrigin(repoPath string) (string, error) {
	cfg, err := ReadConfig(repoPath)
	if err != nil {
		return "", err
	}

	origin, ok := cfg.Remote["origin"]
	if !ok {
		return "", fmt.Errorf("no origin remote in %s", repoPath)
	}

	return origin.URL, nil
}

// remoteName extracts "origin" from `remote "origin"`
func remoteName(section string) (string, bool) {
	const prefix = `remote "`

	if !strings.HasPrefix(section, prefix) || !strings.HasSuffix(section, `"`) || len(section) <= len(prefix) {
		return "", false
	}

	return section[len(prefix) : len(section)-1], true
}
