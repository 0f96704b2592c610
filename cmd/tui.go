package cmd

import (
	"fmt"
	"io"

	"github.com/matheuskafuri/newsportal/internal/config"
	"github.com/matheuskafuri/newsportal/internal/logger"
	"github.com/matheuskafuri/newsportal/internal/speech"
	"github.com/matheuskafuri/newsportal/internal/tui"
	"github.com/spf13/cobra"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lang, err := resolveLanguage(flagLang, cfg)
	if err != nil {
		return err
	}

	// The screen belongs to the TUI, so logs go to a file.
	log, closer, err := logger.OpenFile(config.LogPath(), cfg.LogLevel)
	if err != nil {
		log = logger.New(io.Discard, cfg.LogLevel)
	} else {
		defer closer.Close()
	}

	ctrl, reg := newController(cfg, lang, log)
	engine := speech.NewCommandEngine(cfg.Speech.Command)
	if !engine.Available() {
		log.Info("no speech engine found", "configured", cfg.Speech.Command)
	}

	return tui.Run(tui.RunOpts{
		Controller: ctrl,
		Registry:   reg,
		Speaker:    speech.NewAdapter(engine, log),
		Logger:     log,
	})
}
