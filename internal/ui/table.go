package ui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/inovacc/cvehunt/internal/model"
)

const maxDescriptionLen = 60

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true).Italic(true).MarginLeft(2)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")).Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	columnStyles = []lipgloss.Style{
		lipgloss.NewStyle().Faint(true).Padding(0, 1),
		lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Padding(0, 1),
		lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Padding(0, 1),
		lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Padding(0, 1),
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Padding(0, 1),
	}
)

// RenderTable renders repositories as a titled, 1-indexed table
func RenderTable(title string, repos []model.Repository) string {
	rows := make([][]string, 0, len(repos))

	for i, repo := range repos {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			repo.Name,
			repo.URL,
			truncateString(repo.DisplayDescription(), maxDescriptionLen),
			formatCreated(repo.CreatedAt),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}

			return columnStyles[col]
		}).
		Headers("No.", "Name", "URL", "Description", "Created At").
		Rows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left, tableTitleStyle.Render(title), t.String())
}

func formatCreated(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.UTC().Format(time.RFC3339)
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}
