package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/inovacc/cvehunt/internal/git"
	"github.com/inovacc/cvehunt/internal/giturl"
	"github.com/inovacc/cvehunt/internal/model"
	"github.com/inovacc/cvehunt/internal/search"
	"github.com/inovacc/cvehunt/internal/store"
	"github.com/inovacc/cvehunt/internal/ui"
)

const (
	newSearchWindow = 24 * time.Hour

	promptCVE     = "Enter CVE ID to search for"
	promptDate    = "Enter the search date (YYYY-MM-DD) or 'exit' to cancel"
	promptKeyword = "Enter keyword(s) to search for repositories"

	msgInvalidDate = "Invalid date format. Please enter date in YYYY-MM-DD format."
	msgNoToken     = "No GitHub token provided."
)

// TokenSource resolves the GitHub token
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a token given on the command line
type StaticToken string

func (t StaticToken) Token() (string, error) {
	if t == "" {
		return "", ErrNoToken
	}

	return string(t), nil
}

// StateStore persists the time of the last "new CVE" search
type StateStore interface {
	Path() string
	Exists() bool
	Load() (time.Time, bool, error)
	Save(t time.Time) error
	Delete() error
	Rename(name string) (string, error)
}

// History records completed clones
type History interface {
	SaveClone(clone *model.Clone) error
}

// SearcherFactory builds a searcher authenticated with token
type SearcherFactory func(ctx context.Context, token string) (search.Searcher, error)

// Options configures a Session
type Options struct {
	Config      model.Config
	Tokens      TokenSource
	State       StateStore
	NewSearcher SearcherFactory
	Console     *ui.Console
	Prompter    ui.Prompter
	Cloner      git.Cloner
	History     History // optional
	Now         func() time.Time
	Logger      *slog.Logger
}

// Session runs cvehunt operations against one console
type Session struct {
	cfg         model.Config
	layout      giturl.Layout
	tokens      TokenSource
	state       StateStore
	newSearcher SearcherFactory
	console     *ui.Console
	prompter    ui.Prompter
	presenter   *ui.Presenter
	cloner      git.Cloner
	history     History
	now         func() time.Time
	logger      *slog.Logger
}

// NewSession creates a session
func NewSession(opts Options) *Session {
	cfg := opts.Config
	cfg.Normalize()

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	layout, err := giturl.ParseLayout(cfg.CloneLayout)
	if err != nil {
		logger.Warn("unknown clone layout, using flat", slog.String("layout", cfg.CloneLayout))

		layout = giturl.LayoutFlat
	}

	return &Session{
		cfg:         cfg,
		layout:      layout,
		tokens:      opts.Tokens,
		state:       opts.State,
		newSearcher: opts.NewSearcher,
		console:     opts.Console,
		prompter:    opts.Prompter,
		presenter:   ui.NewPresenter(opts.Console, opts.Prompter),
		cloner:      opts.Cloner,
		history:     opts.History,
		now:         now,
		logger:      logger,
	}
}

// Run dispatches menu choices until the operator exits
func (s *Session) Run(ctx context.Context, chooser Chooser) error {
	for {
		action, err := chooser.Choose(ctx)
		if err != nil {
			return err
		}

		s.logger.Debug("menu choice", slog.String("action", action.String()))

		if action == ActionExit {
			return nil
		}

		if err := s.Dispatch(ctx, action); err != nil {
			return &OperationError{Action: action, Err: err}
		}
	}
}

// Dispatch runs a single menu action. Operations that need input prompt for
// it first.
func (s *Session) Dispatch(ctx context.Context, action Action) error {
	switch action {
	case ActionSearchCVE:
		id, err := s.ask(promptCVE, "")
		if err != nil {
			return ignoreEOF(err)
		}

		return s.SearchCVE(ctx, id)
	case ActionSearchNew:
		return s.SearchNew(ctx)
	case ActionSearchDate:
		day, ok, err := s.AskDate()
		if err != nil || !ok {
			return ignoreEOF(err)
		}

		return s.SearchByDate(ctx, day)
	case ActionSearchKeyword:
		keyword, err := s.ask(promptKeyword, "")
		if err != nil {
			return ignoreEOF(err)
		}

		return s.SearchKeyword(ctx, keyword)
	case ActionHelp:
		s.Help()
		return nil
	case ActionExit, ActionNone:
		return nil
	}

	return fmt.Errorf("unknown action %d", action)
}

// SearchCVE looks up repositories mentioning a CVE identifier. A single page
// is requested with the API's default page size.
func (s *Session) SearchCVE(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	searcher, err := s.searcher(ctx)
	if err != nil || searcher == nil {
		return err
	}

	query := search.CVEQuery(id)

	repos, err := searcher.Fetch(ctx, query, search.Page{})
	if err != nil {
		s.reportFetch(0, err)
	}

	return s.present(ctx, query, repos,
		fmt.Sprintf("Repositories for %s", id),
		fmt.Sprintf("No repositories found for %s.", id))
}

// SearchNew lists repositories created since the last search, falling back to
// the last 24 hours. The current time is saved afterwards whatever the
// outcome.
func (s *Session) SearchNew(ctx context.Context) (err error) {
	defer func() {
		if saveErr := s.state.Save(s.now()); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
	}()

	since, ok, err := s.state.Load()
	if err != nil {
		if !errors.Is(err, store.ErrMalformedState) {
			return err
		}

		s.logger.Warn("ignoring unreadable search state", slog.Any("error", err))
		s.console.Warn("Last search file is unreadable, searching the last 24 hours.")
	}

	if !ok {
		since = s.now().Add(-newSearchWindow)
	}

	searcher, err := s.searcher(ctx)
	if err != nil || searcher == nil {
		return err
	}

	query := search.NewCVEsQuery(since)

	repos, _ := search.FetchPages(ctx, searcher, query, s.cfg.Pages, s.cfg.PerPage, s.reportFetch)

	return s.present(ctx, query, repos, "New CVEs Found", "No new CVEs found.")
}

// AskDate prompts for a YYYY-MM-DD date until one parses. ok is false when
// the operator cancels.
func (s *Session) AskDate() (day time.Time, ok bool, err error) {
	for {
		answer, err := s.ask(promptDate, ui.ExitKeyword)
		if err != nil {
			return time.Time{}, false, err
		}

		if strings.EqualFold(answer, ui.ExitKeyword) {
			return time.Time{}, false, nil
		}

		if parsed, perr := search.ParseDate(answer); perr == nil {
			return parsed, true, nil
		}

		s.console.Error(msgInvalidDate)
	}
}

// SearchByDate lists CVE repositories created on day. One page of the
// configured size is requested.
func (s *Session) SearchByDate(ctx context.Context, day time.Time) error {
	searcher, err := s.searcher(ctx)
	if err != nil || searcher == nil {
		return err
	}

	query := search.DateQuery(day)
	date := day.Format(search.DateLayout)

	repos, err := searcher.Fetch(ctx, query, search.Page{Size: s.cfg.PerPage})
	if err != nil {
		s.reportFetch(0, err)
	}

	return s.present(ctx, query, repos,
		fmt.Sprintf("CVEs created on %s", date),
		fmt.Sprintf("No new CVEs found on %s.", date))
}

// SearchKeyword runs a free-text search across the configured pages
func (s *Session) SearchKeyword(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)

	searcher, err := s.searcher(ctx)
	if err != nil || searcher == nil {
		return err
	}

	query := search.KeywordQuery(keyword)

	repos, _ := search.FetchPages(ctx, searcher, query, s.cfg.Pages, s.cfg.PerPage, s.reportFetch)

	return s.present(ctx, query, repos,
		fmt.Sprintf("Repositories for keyword(s): %s", keyword),
		fmt.Sprintf("No repositories found for keyword(s): %s.", keyword))
}

// Help prints the help screen
func (s *Session) Help() {
	s.console.Println(HelpText())
}

// searcher resolves the token and builds a searcher. A nil searcher with a
// nil error means the operator gave no token, which has been reported.
func (s *Session) searcher(ctx context.Context) (search.Searcher, error) {
	token, err := s.tokens.Token()
	if err != nil {
		if errors.Is(err, store.ErrEmptyToken) || errors.Is(err, ErrNoToken) || errors.Is(err, io.EOF) {
			s.console.Error(msgNoToken)
			return nil, nil
		}

		return nil, err
	}

	searcher, err := s.newSearcher(ctx, token)
	if err != nil {
		s.console.Error("An error occurred: %v", err)
		return nil, nil
	}

	return searcher, nil
}

func (s *Session) reportFetch(page int, err error) {
	s.logger.Debug("search page failed", slog.Int("page", page), slog.Any("error", err))
	s.console.Error("%s", search.Describe(err))
}

func (s *Session) present(ctx context.Context, query string, repos []model.Repository, title, emptyMsg string) error {
	return s.presenter.PresentAndSelect(ctx, repos, title, emptyMsg, func(ctx context.Context, repo model.Repository) {
		s.clone(ctx, query, repo)
	})
}

func (s *Session) ask(prompt, def string) (string, error) {
	return s.prompter.Ask(prompt, def)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
