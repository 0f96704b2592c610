package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matheuskafuri/newsportal/internal/config"
	"github.com/matheuskafuri/newsportal/internal/lifecycle"
	"github.com/matheuskafuri/newsportal/internal/logger"
	"github.com/matheuskafuri/newsportal/internal/news"
	"github.com/spf13/cobra"
)

var flagJSON bool

var headlinesCmd = &cobra.Command{
	Use:   "headlines",
	Short: "Fetch and print the current headlines once",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		lang, err := resolveLanguage(flagLang, cfg)
		if err != nil {
			return err
		}

		log := logger.New(os.Stderr, cfg.LogLevel)
		ctrl, _ := newController(cfg, lang, log)

		req := ctrl.Mount()
		ctrl.Resolve(ctrl.Fetch(cmd.Context(), req))
		ctrl.Stop()

		snap := ctrl.Snapshot()
		if snap.State == lifecycle.Failed {
			return errors.New(snap.Error)
		}

		out := cmd.OutOrStdout()
		if flagJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(snap.Articles)
		}
		writeHeadlines(out, snap)
		return nil
	},
}

func init() {
	headlinesCmd.Flags().BoolVar(&flagJSON, "json", false, "print articles as JSON")
}

// writeHeadlines prints a settled snapshot as a numbered list.
func writeHeadlines(w io.Writer, snap lifecycle.Snapshot) {
	if snap.Error != "" {
		fmt.Fprintf(w, "[%s] %s\n", snap.LastUpdated, snap.Error)
		return
	}
	fmt.Fprintf(w, "Headlines (%s) · updated %s\n\n", snap.Language, snap.LastUpdated)
	for i, a := range snap.Articles {
		fmt.Fprintf(w, "%2d. %s\n", i+1, a.Title)
		if desc := news.PlainText(a.Description); desc != "" {
			fmt.Fprintf(w, "    %s\n", truncate(desc, 200))
		}
		if a.Link != "" {
			fmt.Fprintf(w, "    %s\n", a.Link)
		}
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
