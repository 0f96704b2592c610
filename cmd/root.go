package cmd

import (
	"fmt"
	"os"

	"github.com/matheuskafuri/newsportal/internal/update"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagLang   string
	flagConfig string
	flagCheck  bool
)

var rootCmd = &cobra.Command{
	Use:   "newsportal",
	Short: "Terminal news portal for English, Hindi and Tamil headlines",
	Long: `newsportal shows the latest headlines in English, हिन्दी or தமிழ், refreshes them
every hour, links to a live news stream and can read articles aloud.`,
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "news language: en, hi or ta (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check GitHub for a newer release")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(headlinesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(voicesCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "newsportal %s (commit: %s, built: %s)\n", version, commit, date)
		if !flagCheck {
			return nil
		}
		res, err := update.Check(cmd.Context(), nil, update.ReleasesURL, version)
		if err != nil {
			return err
		}
		if res.Newer() {
			fmt.Fprintf(out, "newsportal %s is available: %s\n", res.LatestVersion, res.URL)
		} else {
			fmt.Fprintln(out, "You are on the latest version.")
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
