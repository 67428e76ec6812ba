package encoding

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileExists checks if a file exists at the given path.
func FileExists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// EnsureParentDir ensures the parent directory of a file path exists.
func EnsureParentDir(fs afero.Fs, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return nil
}

// ReadFile reads the entire contents of a file.
// Returns nil, nil if the file does not exist.
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return data, nil
}

// WriteFile writes data to a file with the specified permissions.
// Creates parent directories if they don't exist.
func WriteFile(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	if err := EnsureParentDir(fs, path); err != nil {
		return err
	}

	if err := afero.WriteFile(fs, path, data, perm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
