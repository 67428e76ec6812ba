package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/inovacc/cvehunt/internal/search"
)

var cveCmd = &cobra.Command{
	Use:     "cve <CVE-ID>",
	Short:   "Search repositories for a specific CVE",
	Example: "  cvehunt cve CVE-2021-44228",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		return a.session.SearchCVE(cmd.Context(), args[0])
	},
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Search CVE repositories created since the last search",
	Long: `Search CVE repositories created since the last "new" search, or in the
last 24 hours on the first run. The search time is saved afterwards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		return a.session.SearchNew(cmd.Context())
	},
}

var dateCmd = &cobra.Command{
	Use:     "date <YYYY-MM-DD>",
	Short:   "Search CVE repositories created on a date",
	Example: "  cvehunt date 2024-05-01",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := search.ParseDate(args[0])
		if err != nil {
			return err
		}

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		return a.session.SearchByDate(cmd.Context(), day)
	},
}

var keywordCmd = &cobra.Command{
	Use:     "keyword <words...>",
	Short:   "Search repositories by keyword",
	Example: "  cvehunt keyword log4shell scanner",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		return a.session.SearchKeyword(cmd.Context(), strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(cveCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(keywordCmd)
}
