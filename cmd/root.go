package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/inovacc/cvehunt/internal/application"
	"github.com/inovacc/cvehunt/internal/giturl"
	"github.com/inovacc/cvehunt/internal/model"
)

var cfg = model.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Find and clone GitHub repositories referencing CVEs",
	Long: `cvehunt searches GitHub for repositories that mention CVE identifiers,
lists the hits and clones the ones you pick.

Run without arguments for the interactive menu. The "new" search remembers
when it last ran so later runs only show repositories created since then.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd.Flags(), &cfg); err != nil {
			return err
		}

		setupLogging(cfg.Verbose)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.session.ReconcileState(); err != nil {
			return err
		}

		return a.session.Run(cmd.Context(), a.chooser)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())
}

func addConfigFlags(flags *pflag.FlagSet) {
	defaults := model.DefaultConfig()

	flags.String("api-url", defaults.APIURL, "GitHub API base URL")
	flags.Int("pages", defaults.Pages, "Pages fetched concurrently by new and keyword searches")
	flags.Int("per-page", defaults.PerPage, "Results requested per page")
	flags.String("clone-dir", defaults.CloneDir, "Directory repositories are cloned into")
	flags.String("clone-args", "", "Extra arguments for git clone, e.g. \"--depth 1\"")
	flags.String("clone-layout", defaults.CloneLayout, "Clone directory layout: flat (<dir>/<name>) or owner (<dir>/<owner>/<name>)")
	flags.String("settings-file", "", "Settings file holding the GitHub token (default XDG config dir)")
	flags.String("state-file", "", "Last search state file (default XDG state dir)")
	flags.String("history-file", "", "Clone history database (default XDG data dir)")
	flags.String("token", "", "GitHub token for this run, not saved")
	flags.Bool("no-tui", false, "Use plain prompts instead of the interactive menu")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

func newViper() *viper.Viper {
	v := viper.NewWithOptions(
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(application.AppName)
	v.AutomaticEnv()

	return v
}

// loadConfig merges flags and CVEHUNT_* environment variables into c.
// Flags set on the command line win over the environment.
func loadConfig(flags *pflag.FlagSet, c *model.Config) error {
	v := newViper()

	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	if err := v.Unmarshal(c); err != nil {
		return err
	}

	c.Normalize()

	if _, err := giturl.ParseLayout(c.CloneLayout); err != nil {
		return err
	}

	return nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
