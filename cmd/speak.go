package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/matheuskafuri/newsportal/internal/config"
	"github.com/matheuskafuri/newsportal/internal/logger"
	"github.com/matheuskafuri/newsportal/internal/registry"
	"github.com/matheuskafuri/newsportal/internal/speech"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak <text>",
	Short: "Read text aloud in the voice for --lang",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		lang, err := resolveLanguage(flagLang, cfg)
		if err != nil {
			return err
		}

		engine := speech.NewCommandEngine(cfg.Speech.Command)
		adapter := speech.NewAdapter(engine, logger.New(os.Stderr, cfg.LogLevel))

		err = adapter.Speak(strings.Join(args, " "), lang)
		if errors.Is(err, speech.ErrUnsupported) {
			return fmt.Errorf("%w: install espeak-ng or set speech.command in %s", err, config.DefaultConfigPath())
		}
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		go func() {
			<-ctx.Done()
			adapter.Stop()
		}()
		engine.Wait()
		return nil
	},
}

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List speech voices and the one chosen for each language",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		engine := speech.NewCommandEngine(cfg.Speech.Command)
		if !engine.Available() {
			return speech.ErrUnsupported
		}
		voices := engine.Voices()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Engine: %s (%d voices)\n\n", engine.Program(), len(voices))
		writeVoiceChoices(out, voices)
		return nil
	},
}

func writeVoiceChoices(w io.Writer, voices []speech.Voice) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LANG\tLOCALE\tVOICE")
	for _, lang := range registry.All() {
		locale := speech.LocaleFor(lang)
		name := "(engine default)"
		if v, ok := speech.SelectVoice(voices, locale); ok {
			name = fmt.Sprintf("%s [%s]", v.Name, v.Locale)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", lang, locale, name)
	}
	tw.Flush()
}
