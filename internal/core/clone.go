package core

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/inovacc/cvehunt/internal/git"
	"github.com/inovacc/cvehunt/internal/giturl"
	"github.com/inovacc/cvehunt/internal/model"
)

// clone fetches repo into the clone directory and records it in the history.
// Clone and history failures are reported, never returned.
func (s *Session) clone(ctx context.Context, query string, repo model.Repository) {
	dest, err := s.cloneDest(repo)
	if err != nil {
		s.console.Error("Failed to clone %s: %v", repo.Name, err)
		return
	}

	s.logger.Debug("cloning repository", slog.String("url", repo.URL), slog.String("path", dest))

	if err := s.cloner.Clone(ctx, repo.URL, dest); err != nil {
		s.logger.Debug("clone failed", slog.String("url", repo.URL), slog.Any("error", err))
		s.console.Error("Failed to clone %s: %s", repo.Name, git.Reason(err))

		return
	}

	s.console.Success("Successfully cloned %s", repo.Name)

	if s.history == nil {
		return
	}

	origin, err := git.RemoteOrigin(dest)
	if err != nil {
		s.logger.Debug("could not read origin", slog.String("path", dest), slog.Any("error", err))
	}

	abs, err := filepath.Abs(dest)
	if err != nil {
		abs = dest
	}

	if err := s.history.SaveClone(&model.Clone{
		Name:   repo.Name,
		URL:    repo.URL,
		Origin: giturl.Sanitize(origin),
		Path:   abs,
		Query:  query,
	}); err != nil {
		s.logger.Warn("failed to record clone", slog.String("path", abs), slog.Any("error", err))
		s.console.Warn("Could not record clone in history: %v", err)
	}
}

// cloneDest places the clone under the clone directory by name, or by owner
// and name with the owner layout
func (s *Session) cloneDest(repo model.Repository) (string, error) {
	parsed, err := giturl.ParseRepository(repo.URL)
	if err != nil {
		return "", err
	}

	name := repo.Name
	if name == "" || s.layout == giturl.LayoutOwner {
		name = parsed.Dir(s.layout)
	}

	return filepath.Join(s.cfg.CloneDir, name), nil
}
