package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGit writes a shell script standing in for the git executable. The
// script records its arguments in args.txt next to itself.
func fakeGit(t *testing.T, body string) (gitPath, argsFile string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}

	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args.txt")
	gitPath = filepath.Join(dir, "git")

	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + argsFile + "\n" + body + "\n"
	require.NoError(t, os.WriteFile(gitPath, []byte(script), 0755))

	return gitPath, argsFile
}

func TestClient_CloneSuccess(t *testing.T) {
	gitPath, argsFile := fakeGit(t, `mkdir -p "$4"; exit 0`)
	target := filepath.Join(t.TempDir(), "poc")

	c := &Client{GitPath: gitPath}
	require.NoError(t, c.Clone(context.Background(), "https://github.com/a/poc", target))

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t, []string{"clone", "--", "https://github.com/a/poc", target}, strings.Fields(string(args)))
	require.DirExists(t, target)
}

func TestClient_CloneExtraArgs(t *testing.T) {
	gitPath, argsFile := fakeGit(t, `exit 0`)
	target := filepath.Join(t.TempDir(), "poc")

	c := &Client{GitPath: gitPath, ExtraArgs: []string{"--depth", "1"}}
	require.NoError(t, c.Clone(context.Background(), "https://github.com/a/poc", target))

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t, []string{"clone", "--depth", "1", "--", "https://github.com/a/poc", target}, strings.Fields(string(args)))
}

func TestClient_CloneFailure(t *testing.T) {
	gitPath, _ := fakeGit(t, `echo "remote: Repository not found." >&2; exit 128`)

	c := &Client{GitPath: gitPath}
	err := c.Clone(context.Background(), "https://github.com/a/gone", filepath.Join(t.TempDir(), "gone"))

	var gitErr *GitError
	require.True(t, errors.As(err, &gitErr))
	require.Equal(t, 128, gitErr.ExitCode)
	require.Equal(t, 128, GetExitCode(err))
	require.True(t, IsNotFound(err))
	require.Contains(t, err.Error(), "Repository not found")
}

func TestClient_CloneMissingExecutable(t *testing.T) {
	c := &Client{GitPath: filepath.Join(t.TempDir(), "no-such-git")}

	err := c.Clone(context.Background(), "https://github.com/a/poc", filepath.Join(t.TempDir(), "poc"))
	require.Error(t, err)
	require.Equal(t, -1, GetExitCode(err))
}

func TestClient_CloneDestinationExists(t *testing.T) {
	target := t.TempDir()

	c := &Client{GitPath: "unused"}
	err := c.Clone(context.Background(), "https://github.com/a/poc", target)

	var destErr *DestinationExistsError
	require.True(t, errors.As(err, &destErr))
	require.Equal(t, target, destErr.Path)
	require.True(t, IsAlreadyExists(err))
}

func TestGoGitCloner_DestinationExists(t *testing.T) {
	target := t.TempDir()

	err := NewGoGitCloner().Clone(context.Background(), "https://github.com/a/poc", target)
	require.True(t, IsAlreadyExists(err))
}

func TestNewCloner(t *testing.T) {
	c, err := NewCloner("--depth 1 --branch 'main'", nil)
	require.NoError(t, err)
	require.NotNil(t, c)

	if client, ok := c.(*Client); ok {
		require.Equal(t, []string{"--depth", "1", "--branch", "main"}, client.ExtraArgs)
	}
}

func TestNewCloner_BadArgs(t *testing.T) {
	_, err := NewCloner(`--depth "1`, nil)
	require.Error(t, err)
}
