package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/cvehunt/internal/git"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	urlStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type CloneModel struct {
	spinner  spinner.Model
	ctx      context.Context
	cancel   context.CancelFunc
	cloner   git.Cloner
	canceled bool
	url      string
	path     string
	cloning  bool
	done     bool
	err      error
}

type cloneCompleteMsg struct {
	err error
}

// NewCloneModel creates a model that clones url into path with cloner.
// Ctrl+C cancels the clone and the model quits once the cloner has returned.
func NewCloneModel(ctx context.Context, cloner git.Cloner, url, path string) CloneModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ctx, cancel := context.WithCancel(ctx)

	return CloneModel{
		spinner: s,
		ctx:     ctx,
		cancel:  cancel,
		cloner:  cloner,
		url:     url,
		path:    path,
		cloning: true,
	}
}

func (m CloneModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cloneRepo)
}

func (m CloneModel) cloneRepo() tea.Msg {
	return cloneCompleteMsg{err: m.cloner.Clone(m.ctx, m.url, m.path)}
}

func (m CloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch keyMsg := msg.(type) {
	case tea.KeyMsg:
		if keyMsg.String() == "ctrl+c" && m.cloning {
			m.canceled = true
			m.cancel()

			return m, nil
		}

		if m.done {
			return m, tea.Quit
		}

	case cloneCompleteMsg:
		m.cloning = false
		m.done = true
		m.err = keyMsg.err
		m.cancel()

		if m.canceled && m.err != nil {
			m.err = context.Canceled
		}

		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(keyMsg)

		return m, cmd
	}

	return m, nil
}

// View only shows progress; the session prints the outcome itself
func (m CloneModel) View() string {
	if m.done {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("\n  ✗ %s\n", m.url))
		}

		return ""
	}

	if m.canceled {
		return fmt.Sprintf("\n  %s Cancelling %s\n\n", m.spinner.View(), urlStyle.Render(m.url))
	}

	if m.cloning {
		return fmt.Sprintf("\n  %s Cloning %s\n  %s\n\n", m.spinner.View(), urlStyle.Render(m.url), pathStyle.Render("→ "+m.path))
	}

	return ""
}

func (m CloneModel) Error() error {
	return m.err
}

// SpinnerCloner shows a spinner while the wrapped cloner runs
type SpinnerCloner struct {
	cloner git.Cloner
	opts   []tea.ProgramOption
}

var _ git.Cloner = (*SpinnerCloner)(nil)

// NewSpinnerCloner wraps cloner. opts are passed to every tea.Program.
func NewSpinnerCloner(cloner git.Cloner, opts ...tea.ProgramOption) *SpinnerCloner {
	return &SpinnerCloner{cloner: cloner, opts: opts}
}

// Clone runs the wrapped cloner behind a spinner. It returns only after the
// wrapped cloner has, including when the operator cancels with Ctrl+C.
func (s *SpinnerCloner) Clone(ctx context.Context, cloneURL, targetPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	final, err := tea.NewProgram(NewCloneModel(ctx, s.cloner, cloneURL, targetPath), s.opts...).Run()
	if err != nil {
		return fmt.Errorf("clone progress failed: %w", err)
	}

	model, ok := final.(CloneModel)
	if !ok {
		return nil
	}

	return model.Error()
}
