package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/inovacc/cvehunt/internal/store"
	"github.com/inovacc/cvehunt/internal/ui"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the last search time",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the last search time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(afero.NewOsFs(), slog.Default())
		if err != nil {
			return err
		}

		console := ui.NewConsole(cmd.OutOrStdout())

		last, ok, err := state.Load()
		if err != nil {
			if errors.Is(err, store.ErrMalformedState) {
				console.Warn("Last search file is unreadable: %v", err)
				return nil
			}

			return err
		}

		console.Info("State file: %s", state.Path())

		if !ok {
			console.Println("No search recorded yet. The next new CVE search covers the last 24 hours.")
			return nil
		}

		console.Println(fmt.Sprintf("Last search: %s (%s)", last.Format(time.RFC3339), humanize.Time(last)))

		return nil
	},
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the last search time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(afero.NewOsFs(), slog.Default())
		if err != nil {
			return err
		}

		console := ui.NewConsole(cmd.OutOrStdout())

		if !state.Exists() {
			console.Println("No last search file to delete.")
			return nil
		}

		if err := state.Delete(); err != nil {
			return err
		}

		console.Success("Last search file deleted.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
	stateCmd.AddCommand(stateShowCmd)
	stateCmd.AddCommand(stateResetCmd)
}
