package cmd

import (
	"fmt"
	"log/slog"

	"github.com/matheuskafuri/newsportal/internal/config"
	"github.com/matheuskafuri/newsportal/internal/lifecycle"
	"github.com/matheuskafuri/newsportal/internal/news"
	"github.com/matheuskafuri/newsportal/internal/registry"
)

// resolveLanguage applies the --lang flag over the configured default.
func resolveLanguage(flag string, cfg *config.Config) (registry.Language, error) {
	if flag == "" {
		return cfg.DefaultLanguage(), nil
	}
	lang, err := registry.Parse(flag)
	if err != nil {
		return "", fmt.Errorf("invalid --lang value: %w", err)
	}
	return lang, nil
}

// newController wires the registry, fetcher and refresh controller.
func newController(cfg *config.Config, lang registry.Language, log *slog.Logger) (*lifecycle.Controller, *registry.Registry) {
	reg, missing := cfg.Registry()
	for _, name := range missing {
		log.Warn("environment variable referenced by config is not set", "name", name)
	}

	fetcher := news.NewHTTPFetcher(reg,
		news.WithTimeout(cfg.FetchTimeoutDuration()),
		news.WithLogger(log),
	)
	ctrl := lifecycle.New(fetcher, lifecycle.Options{
		Language: lang,
		Interval: cfg.RefreshDuration(),
		Logger:   log,
	})
	return ctrl, reg
}
