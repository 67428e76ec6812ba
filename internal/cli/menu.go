package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inovacc/cvehunt/internal/core"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

type menuItem struct {
	action core.Action
}

func (i menuItem) FilterValue() string { return i.action.Title() }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(menuItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%d. %s", index+1, i.action.Title())

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + s[0])
		}
	}

	_, _ = fmt.Fprint(w, fn(str))
}

type MainMenuModel struct {
	list     list.Model
	choice   core.Action
	quitting bool
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)

		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "q":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(menuItem); ok {
				m.choice = i.action
			}

			return m, tea.Quit

		default:
			// digits jump straight to the numbered entry
			if action, ok := core.ParseAction(keypress); ok && len(keypress) == 1 {
				m.choice = action

				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m MainMenuModel) View() string {
	if m.choice != core.ActionNone {
		return ""
	}

	if m.quitting {
		return "Goodbye!\n"
	}

	return "\n" + m.list.View()
}

// GetChoice returns the chosen action, ActionExit when the menu was quit
func (m MainMenuModel) GetChoice() core.Action {
	if m.quitting || m.choice == core.ActionNone {
		return core.ActionExit
	}

	return m.choice
}

func NewMainMenu() MainMenuModel {
	items := make([]list.Item, 0, len(core.Actions))
	for _, a := range core.Actions {
		items = append(items, menuItem{action: a})
	}

	const defaultWidth = 40

	l := list.New(items, itemDelegate{}, defaultWidth, 20)
	l.Title = "cvehunt - What would you like to do?"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return MainMenuModel{list: l}
}

// Menu runs the main menu as a bubbletea program for every choice
type Menu struct {
	opts []tea.ProgramOption
}

var _ core.Chooser = (*Menu)(nil)

// NewMenu creates a menu chooser. opts are passed to every tea.Program.
func NewMenu(opts ...tea.ProgramOption) *Menu {
	return &Menu{opts: opts}
}

func (m *Menu) Choose(ctx context.Context) (core.Action, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, m.opts...)

	final, err := tea.NewProgram(NewMainMenu(), opts...).Run()
	if err != nil {
		return core.ActionNone, fmt.Errorf("menu failed: %w", err)
	}

	model, ok := final.(MainMenuModel)
	if !ok {
		return core.ActionExit, nil
	}

	return model.GetChoice(), nil
}
