package git

import (
	"context"
	"fmt"
	"io"

	gogit "github.com/go-git/go-git/v5"
)

// GoGitCloner clones in-process with go-git
type GoGitCloner struct {
	Progress io.Writer
}

// NewGoGitCloner creates a go-git backed cloner
func NewGoGitCloner() *GoGitCloner {
	return &GoGitCloner{}
}

func (g *GoGitCloner) Clone(ctx context.Context, cloneURL, targetPath string) error {
	if err := checkDestination(targetPath); err != nil {
		return err
	}

	_, err := gogit.PlainCloneContext(ctx, targetPath, false, &gogit.CloneOptions{
		URL:      cloneURL,
		Progress: g.Progress,
	})
	if err != nil {
		return fmt.Errorf("clone %s: %w", cloneURL, err)
	}

	return nil
}
