// Package git clones repositories, preferring the git executable and falling
// back to an in-process go-git clone when no executable is installed.
package git

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/google/shlex"
)

// Cloner clones a repository into a local directory
type Cloner interface {
	Clone(ctx context.Context, cloneURL, targetPath string) error
}

// DestinationExistsError indicates the clone target is already present
type DestinationExistsError struct {
	Path string
}

func (e *DestinationExistsError) Error() string {
	return fmt.Sprintf("destination already exists: %s", e.Path)
}

// Client wraps the git executable
type Client struct {
	GitPath   string   // Path to git executable
	ExtraArgs []string // Arguments inserted after "clone"
	Stderr    io.Writer
}

// NewClient creates a client for the git executable found on PATH
func NewClient(extraArgs []string) *Client {
	gitPath, _ := exec.LookPath("git")

	return &Client{
		GitPath:   gitPath,
		ExtraArgs: extraArgs,
		Stderr:    os.Stderr,
	}
}

// Command creates a git command
// Note: Do not set Stdout/Stderr if you plan to use CombinedOutput()
func (c *Client) Command(ctx context.Context, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, c.GitPath, args...)
}

// Clone runs git clone. A non-zero exit status is returned as *GitError.
func (c *Client) Clone(ctx context.Context, cloneURL, targetPath string) error {
	if err := checkDestination(targetPath); err != nil {
		return err
	}

	args := append([]string{"clone"}, c.ExtraArgs...)
	args = append(args, "--", cloneURL, targetPath)

	output, err := c.Command(ctx, args...).CombinedOutput()
	if err != nil {
		return NewGitError(args, string(output), err)
	}

	return nil
}

// NewCloner picks the clone backend. extraArgs is split like a shell would
// and only applies to the git executable.
func NewCloner(extraArgs string, logger *slog.Logger) (Cloner, error) {
	if logger == nil {
		logger = slog.Default()
	}

	args, err := shlex.Split(extraArgs)
	if err != nil {
		return nil, fmt.Errorf("invalid clone arguments %q: %w", extraArgs, err)
	}

	client := NewClient(args)
	if client.GitPath != "" {
		logger.Debug("using git executable", slog.String("path", client.GitPath), slog.Any("args", args))
		return client, nil
	}

	logger.Warn("git executable not found, using built-in clone")

	if len(args) > 0 {
		logger.Warn("clone arguments ignored by built-in clone", slog.Any("args", args))
	}

	return NewGoGitCloner(), nil
}

func checkDestination(targetPath string) error {
	if _, err := os.Stat(targetPath); err == nil {
		return &DestinationExistsError{Path: targetPath}
	}

	return nil
}
