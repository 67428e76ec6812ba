package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inovacc/cvehunt/internal/application"
	"github.com/inovacc/cvehunt/internal/auth"
	"github.com/inovacc/cvehunt/internal/cli"
	"github.com/inovacc/cvehunt/internal/core"
	"github.com/inovacc/cvehunt/internal/database"
	"github.com/inovacc/cvehunt/internal/encoding"
	"github.com/inovacc/cvehunt/internal/git"
	"github.com/inovacc/cvehunt/internal/search"
	"github.com/inovacc/cvehunt/internal/store"
	"github.com/inovacc/cvehunt/internal/ui"
)

// app holds the components of one command invocation
type app struct {
	session *core.Session
	chooser core.Chooser
	history database.Store
}

func newApp(cmd *cobra.Command) (*app, error) {
	var (
		fs          = afero.NewOsFs()
		logger      = slog.Default()
		console     = ui.NewConsole(cmd.OutOrStdout())
		prompter    = ui.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		interactive = useTUI(cmd)
	)

	settingsPath, err := resolvePath(cfg.SettingsFile, application.SettingsPath)
	if err != nil {
		return nil, err
	}

	state, err := openState(fs, logger)
	if err != nil {
		return nil, err
	}

	creds := store.NewCredentials(fs, settingsPath, prompter,
		store.WithSuggester(store.DiscoverToken),
		store.WithCredentialsLogger(logger))

	tokens := auth.NewResolver("GitHub", logger).
		WithFlagValue(cfg.Token).
		WithProvider(func() (string, string, error) {
			token, err := creds.Token()
			return token, filepath.Base(creds.Path()), err
		})

	cloner, err := git.NewCloner(cfg.CloneArgs, logger)
	if err != nil {
		return nil, err
	}

	a := &app{}

	if interactive {
		cloner = cli.NewSpinnerCloner(cloner)
		a.chooser = cli.NewMenu()
	} else {
		a.chooser = core.NewLineMenu(console, prompter)
	}

	opts := core.Options{
		Config:      cfg,
		Tokens:      tokens,
		State:       state,
		NewSearcher: newSearcher(logger),
		Console:     console,
		Prompter:    prompter,
		Cloner:      cloner,
		Logger:      logger,
	}

	// history is best effort, another instance may hold the lock
	if history, err := openHistory(fs); err != nil {
		logger.Warn("clone history unavailable", slog.Any("error", err))
	} else {
		a.history = history
		opts.History = history
	}

	a.session = core.NewSession(opts)

	return a, nil
}

func (a *app) close() {
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			slog.Debug("failed to close history", slog.Any("error", err))
		}
	}
}

func newSearcher(logger *slog.Logger) core.SearcherFactory {
	return func(ctx context.Context, token string) (search.Searcher, error) {
		client, err := search.NewClient(ctx, token,
			search.WithBaseURL(cfg.APIURL),
			search.WithLogger(logger))
		if err != nil {
			return nil, err
		}

		return client, nil
	}
}

func openState(fs afero.Fs, logger *slog.Logger) (*store.SearchState, error) {
	path, err := resolvePath(cfg.StateFile, application.StatePath)
	if err != nil {
		return nil, err
	}

	return store.NewSearchState(fs, path, logger), nil
}

func openHistory(fs afero.Fs) (database.Store, error) {
	path, err := resolvePath(cfg.HistoryFile, application.HistoryPath)
	if err != nil {
		return nil, err
	}

	if err := encoding.EnsureParentDir(fs, path); err != nil {
		return nil, err
	}

	db, err := database.NewBolt(path)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// useTUI reports whether the bubbletea menu can be used
func useTUI(cmd *cobra.Command) bool {
	if cfg.NoTUI {
		return false
	}

	return isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
