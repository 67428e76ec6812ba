package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// resolvePath returns path made absolute, with a leading ~ replaced by the
// home directory. An empty path resolves through fallback, one of the
// application default locations.
func resolvePath(path string, fallback func() (string, error)) (string, error) {
	if path == "" {
		p, err := fallback()
		if err != nil {
			return "", fmt.Errorf("failed to resolve default path: %w", err)
		}

		return p, nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		path = filepath.Join(xdg.Home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	return abs, nil
}
