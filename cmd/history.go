package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/inovacc/cvehunt/internal/model"
	"github.com/inovacc/cvehunt/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List repositories cloned by cvehunt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistory(afero.NewOsFs())
		if err != nil {
			return err
		}

		defer func() { _ = db.Close() }()

		clones, err := db.ListClones()
		if err != nil {
			return err
		}

		console := ui.NewConsole(cmd.OutOrStdout())

		if len(clones) == 0 {
			console.Println("No repositories cloned yet.")
			return nil
		}

		if historyLimit > 0 && len(clones) > historyLimit {
			clones = clones[:historyLimit]
		}

		console.Println(renderHistory(clones))

		return nil
	},
}

func renderHistory(clones []model.Clone) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Name", "Origin", "Path", "Query", "Cloned").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})

	for _, c := range clones {
		origin := c.Origin
		if origin == "" {
			origin = c.URL
		}

		t.Row(c.Name, origin, c.Path, c.Query, humanize.Time(c.ClonedAt))
	}

	return fmt.Sprintf("%s\n%d clone(s)", t.Render(), len(clones))
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show at most n clones (0 shows all)")
}
