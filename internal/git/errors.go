package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Common error messages from git
const (
	errMsgAuthFailed       = "Authentication failed"
	errMsgPermissionDenied = "Permission denied"
	errMsgNotFound         = "not found"
	errMsgAlreadyExists    = "already exists"
)

// GitError represents a git command error
type GitError struct {
	ExitCode int
	Stderr   string
	Args     []string
	err      error
}

func (e *GitError) Error() string {
	if e.Stderr == "" {
		return fmt.Errorf("git command failed: %w", e.err).Error()
	}

	return fmt.Sprintf("git command failed: %s", strings.TrimSpace(e.Stderr))
}

func (e *GitError) Unwrap() error {
	return e.err
}

// NewGitError creates a GitError from command output and error
func NewGitError(args []string, stderr string, err error) *GitError {
	exitCode := -1

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	return &GitError{
		ExitCode: exitCode,
		Stderr:   stderr,
		Args:     args,
		err:      err,
	}
}

// IsAuthRequired checks if the error indicates authentication is required
func IsAuthRequired(err error) bool {
	return containsError(err, errMsgAuthFailed) || containsError(err, errMsgPermissionDenied)
}

// IsNotFound checks if the error indicates the remote repository is gone
func IsNotFound(err error) bool {
	return containsError(err, errMsgNotFound)
}

// IsAlreadyExists checks if the error indicates the destination already exists
func IsAlreadyExists(err error) bool {
	var destErr *DestinationExistsError
	if errors.As(err, &destErr) {
		return true
	}

	return containsError(err, errMsgAlreadyExists)
}

// GetExitCode returns the exit code from a git error, or -1 if not available
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return gitErr.ExitCode
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}

// Reason condenses a clone error into a short operator-facing message
func Reason(err error) string {
	var destErr *DestinationExistsError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &destErr):
		return destErr.Error()
	case IsAuthRequired(err):
		return "authentication required"
	case IsNotFound(err):
		return "repository not found"
	}

	if code := GetExitCode(err); code > 0 {
		return fmt.Sprintf("git exited with status %d", code)
	}

	return err.Error()
}

// containsError checks if the error contains a specific message
func containsError(err error, msg string) bool {
	if err == nil {
		return false
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) {
		return strings.Contains(strings.ToLower(gitErr.Stderr), strings.ToLower(msg))
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(msg))
}
