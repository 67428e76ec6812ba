package core

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

const (
	promptReconcile = "Do you want to delete or rename the last search file? (delete/rename/continue)"
	promptRename    = "Enter new name for the last search file"

	reconcileDelete   = "delete"
	reconcileRename   = "rename"
	reconcileContinue = "continue"
)

// ReconcileState lets the operator delete or rename an existing state file
// before the first search. Any other answer keeps the file.
func (s *Session) ReconcileState() error {
	if !s.state.Exists() {
		return nil
	}

	s.console.Warn("Last search file already exists. This may prevent finding new CVEs.")

	answer, err := s.ask(promptReconcile, reconcileContinue)
	if err != nil {
		if errors.Is(err, io.EOF) {
			answer = reconcileContinue
		} else {
			return err
		}
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case reconcileDelete:
		if err := s.state.Delete(); err != nil {
			return err
		}

		s.console.Success("Last search file deleted.")
	case reconcileRename:
		name, err := s.ask(promptRename, "")
		if err != nil {
			return ignoreEOF(err)
		}

		target, err := s.state.Rename(name)
		if err != nil {
			s.console.Error("Failed to rename last search file: %v", err)
			return nil
		}

		s.logger.Debug("search state renamed", slog.String("path", target))
		s.console.Success("Last search file renamed to %s.", target)
	default:
		s.console.Warn("Continuing with the existing last search file.")
	}

	return nil
}
