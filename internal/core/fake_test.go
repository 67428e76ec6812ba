package core

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/cvehunt/internal/model"
	"github.com/inovacc/cvehunt/internal/search"
	"github.com/inovacc/cvehunt/internal/store"
	"github.com/inovacc/cvehunt/internal/ui"
)

const statePath = "/state/last_search.json"

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// scriptedPrompter answers prompts from a fixed list and then reports EOF
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (s *scriptedPrompter) Ask(prompt, def string) (string, error) {
	s.prompts = append(s.prompts, prompt)

	if len(s.answers) == 0 {
		return "", io.EOF
	}

	answer := s.answers[0]
	s.answers = s.answers[1:]

	if answer == "" {
		return def, nil
	}

	return answer, nil
}

type fakeSearcher struct {
	mu      sync.Mutex
	repos   map[int][]model.Repository
	err     error
	queries []string
	pages   []search.Page
}

func (f *fakeSearcher) Fetch(_ context.Context, query string, page search.Page) ([]model.Repository, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, query)
	f.pages = append(f.pages, page)

	if f.err != nil {
		return nil, f.err
	}

	return f.repos[page.Number], nil
}

// fakeCloner creates the destination with an origin remote instead of cloning
type fakeCloner struct {
	err   error
	calls [][2]string
}

func (f *fakeCloner) Clone(_ context.Context, cloneURL, targetPath string) error {
	f.calls = append(f.calls, [2]string{cloneURL, targetPath})

	if f.err != nil {
		return f.err
	}

	gitDir := filepath.Join(targetPath, ".git")
	if err := os.MkdirAll(gitDir, 0755); err != nil {
		return err
	}

	config := "[remote \"origin\"]\n\turl = " + cloneURL + "\n"

	return os.WriteFile(filepath.Join(gitDir, "config"), []byte(config), 0644)
}

type fakeHistory struct {
	clones []model.Clone
	err    error
}

func (f *fakeHistory) SaveClone(clone *model.Clone) error {
	if f.err != nil {
		return f.err
	}

	f.clones = append(f.clones, *clone)

	return nil
}

type fixture struct {
	session  *Session
	out      *bytes.Buffer
	prompter *scriptedPrompter
	searcher *fakeSearcher
	cloner   *fakeCloner
	history  *fakeHistory
	state    *store.SearchState
	fs       afero.Fs
	tokens   TokenSource
	cloneDir string
}

func newFixture(t *testing.T, answers ...string) *fixture {
	t.Helper()

	f := &fixture{
		out:      &bytes.Buffer{},
		prompter: &scriptedPrompter{answers: answers},
		searcher: &fakeSearcher{repos: map[int][]model.Repository{}},
		cloner:   &fakeCloner{},
		history:  &fakeHistory{},
		fs:       afero.NewMemMapFs(),
		tokens:   StaticToken("abc123"),
		cloneDir: t.TempDir(),
	}

	f.state = store.NewSearchState(f.fs, statePath, nil)

	return f
}

// build creates the session once the fixture fields are final
func (f *fixture) build() *Session {
	cfg := model.DefaultConfig()
	cfg.CloneDir = f.cloneDir

	f.session = NewSession(Options{
		Config: cfg,
		Tokens: f.tokens,
		State:  f.state,
		NewSearcher: func(_ context.Context, token string) (search.Searcher, error) {
			return f.searcher, nil
		},
		Console:  ui.NewConsole(f.out),
		Prompter: f.prompter,
		Cloner:   f.cloner,
		History:  f.history,
		Now:      func() time.Time { return fixedNow },
	})

	return f.session
}

func (f *fixture) output() string {
	return stripansi.Strip(f.out.String())
}

func (f *fixture) writeState(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(f.fs, statePath, []byte(content), 0644))
}

func (f *fixture) prompted(prompt string) bool {
	for _, p := range f.prompter.prompts {
		if strings.HasPrefix(p, prompt) {
			return true
		}
	}

	return false
}
