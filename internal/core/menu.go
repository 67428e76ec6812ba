package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/cvehunt/internal/ui"
)

const (
	menuPrompt     = "Choose an option"
	menuDefault    = "1"
	msgInvalidMenu = "Invalid input. Please enter a number from 1 to 6."
)

var (
	menuPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1)
	menuHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

// LineMenu prints a numbered menu and reads the choice line by line
type LineMenu struct {
	console  *ui.Console
	prompter ui.Prompter
}

var _ Chooser = (*LineMenu)(nil)

// NewLineMenu creates a line-oriented menu
func NewLineMenu(console *ui.Console, prompter ui.Prompter) *LineMenu {
	return &LineMenu{console: console, prompter: prompter}
}

// Choose shows the menu until a valid entry is picked. End of input selects
// ActionExit.
func (m *LineMenu) Choose(ctx context.Context) (Action, error) {
	for {
		if err := ctx.Err(); err != nil {
			return ActionNone, err
		}

		m.console.Println(RenderMenu())

		answer, err := m.prompter.Ask(menuPrompt, menuDefault)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ActionExit, nil
			}

			return ActionNone, err
		}

		if action, ok := ParseAction(answer); ok {
			return action, nil
		}

		m.console.Error(msgInvalidMenu)
	}
}

// RenderMenu renders the numbered menu panel
func RenderMenu() string {
	var b strings.Builder

	b.WriteString(menuHeadingStyle.Render("What would you like to do?"))

	for i, a := range Actions {
		_, _ = fmt.Fprintf(&b, "\n%d. %s", i+1, a.Title())
	}

	return menuPanelStyle.Render(b.String())
}

// HelpText renders the help screen
func HelpText() string {
	var b strings.Builder

	b.WriteString(menuHeadingStyle.Render("Help - Available Commands"))

	n := 0

	for _, a := range Actions {
		if a.Description() == "" {
			continue
		}

		n++
		_, _ = fmt.Fprintf(&b, "\n%d. %s", n, a.Description())
	}

	return b.String()
}
