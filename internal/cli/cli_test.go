package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inovacc/cvehunt/internal/core"
)

func TestMainMenu_EnterSelectsHighlighted(t *testing.T) {
	m := NewMainMenu()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	assert.Equal(t, core.ActionSearchCVE, updated.(MainMenuModel).GetChoice())
}

func TestMainMenu_DigitShortcut(t *testing.T) {
	m := NewMainMenu()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})

	assert.Equal(t, core.ActionSearchKeyword, updated.(MainMenuModel).GetChoice())
}

func TestMainMenu_QuitExits(t *testing.T) {
	m := NewMainMenu()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Equal(t, core.ActionExit, updated.(MainMenuModel).GetChoice())
	assert.Equal(t, "Goodbye!\n", updated.View())
}

func TestMainMenu_ViewListsActions(t *testing.T) {
	view := NewMainMenu().View()

	for _, a := range core.Actions {
		assert.Contains(t, view, a.Title())
	}
}

type stubCloner struct {
	err error
}

func (s stubCloner) Clone(context.Context, string, string) error {
	return s.err
}

// blockingCloner runs until its context is cancelled
type blockingCloner struct {
	canceled atomic.Bool
	returned atomic.Bool
}

func (b *blockingCloner) Clone(ctx context.Context, _, _ string) error {
	<-ctx.Done()
	b.canceled.Store(true)
	b.returned.Store(true)

	return ctx.Err()
}

func TestCloneModel_Complete(t *testing.T) {
	wantErr := errors.New("boom")
	m := NewCloneModel(context.Background(), stubCloner{err: wantErr}, "https://github.com/a/b", "/tmp/b")

	msg := m.cloneRepo()

	updated, cmd := m.Update(msg)
	require.NotNil(t, cmd)

	model := updated.(CloneModel)
	assert.ErrorIs(t, model.Error(), wantErr)
	assert.Contains(t, model.View(), "https://github.com/a/b")
}

func TestSpinnerCloner_ReturnsClonerError(t *testing.T) {
	wantErr := errors.New("exit status 128")

	var out bytes.Buffer

	cloner := NewSpinnerCloner(stubCloner{err: wantErr},
		tea.WithInput(&bytes.Buffer{}),
		tea.WithOutput(&out),
		tea.WithoutRenderer(),
	)

	assert.ErrorIs(t, cloner.Clone(context.Background(), "https://github.com/a/b", "/tmp/b"), wantErr)
}

func TestCloneModel_CtrlCCancelsAndWaits(t *testing.T) {
	inner := &blockingCloner{}
	m := NewCloneModel(context.Background(), inner, "https://github.com/a/b", "/tmp/b")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd, "model must wait for the cloner before quitting")

	model := updated.(CloneModel)
	require.Error(t, model.ctx.Err())
	assert.Contains(t, model.View(), "Cancelling")

	updated, cmd = model.Update(model.cloneRepo())
	require.NotNil(t, cmd)
	assert.ErrorIs(t, updated.(CloneModel).Error(), context.Canceled)
}

func TestSpinnerCloner_CtrlCStopsClone(t *testing.T) {
	inner := &blockingCloner{}

	var out bytes.Buffer

	cloner := NewSpinnerCloner(inner,
		tea.WithInput(strings.NewReader("\x03")),
		tea.WithOutput(&out),
		tea.WithoutRenderer(),
	)

	err := cloner.Clone(context.Background(), "https://github.com/a/b", "/tmp/b")
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, inner.canceled.Load())
	assert.True(t, inner.returned.Load())
}
