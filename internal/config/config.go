package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/matheuskafuri/newsportal/internal/registry"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Language struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Format  string `yaml:"format,omitempty"`
	NewsURL string `yaml:"news_url"`
	LiveURL string `yaml:"live_url"`
}

type SpeechConfig struct {
	Command string `yaml:"command"` // "espeak-ng", "espeak", "say" or empty
}

type Config struct {
	Language        string       `yaml:"language"`
	RefreshInterval string       `yaml:"refresh_interval"`
	FetchTimeout    string       `yaml:"fetch_timeout"`
	LogLevel        string       `yaml:"log_level,omitempty"`
	Speech          SpeechConfig `yaml:"speech"`
	Languages       []Language   `yaml:"languages"`
}

// DefaultLanguage returns the configured startup language, falling back to English.
func (c *Config) DefaultLanguage() registry.Language {
	lang, err := registry.Parse(c.Language)
	if err != nil {
		return registry.English
	}
	return lang
}

func (c *Config) RefreshDuration() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

func (c *Config) FetchTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// Endpoints expands environment references in the configured URLs and
// returns the registry entries along with the names of any unset variables.
func (c *Config) Endpoints() ([]registry.Endpoint, []string) {
	missing := make(map[string]bool)
	expand := func(s string) string {
		return os.Expand(s, func(name string) string {
			v, ok := os.LookupEnv(name)
			if !ok || v == "" {
				missing[name] = true
			}
			return v
		})
	}

	var out []registry.Endpoint
	for _, l := range c.Languages {
		lang, err := registry.Parse(l.Code)
		if err != nil {
			continue
		}
		out = append(out, registry.Endpoint{
			Language: lang,
			Name:     l.Name,
			NewsURL:  expand(l.NewsURL),
			Format:   registry.Format(l.Format),
			LiveURL:  expand(l.LiveURL),
		})
	}

	var names []string
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)
	return out, names
}

// Registry builds the endpoint registry from the configured languages.
func (c *Config) Registry() (*registry.Registry, []string) {
	eps, missing := c.Endpoints()
	return registry.New(eps), missing
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsportal", "config.yaml")
}

// LogPath returns the TUI log file location.
func LogPath() string {
	return filepath.Join(xdg.StateHome, "newsportal", "newsportal.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// loadEnv reads .env files from the working directory and the config
// directory. Variables already set in the environment win.
func loadEnv(configPath string) {
	for _, p := range []string{".env", filepath.Join(filepath.Dir(configPath), ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
		}
	}
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}
	loadEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	merge(&cfg, defaults)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// merge fills unset fields from defaults. User language entries replace the
// default entry with the same code; languages the user omits keep defaults.
func merge(cfg, defaults *Config) {
	if cfg.Language == "" {
		cfg.Language = defaults.Language
	}
	if cfg.RefreshInterval == "" {
		cfg.RefreshInterval = defaults.RefreshInterval
	}
	if cfg.FetchTimeout == "" {
		cfg.FetchTimeout = defaults.FetchTimeout
	}

	user := make(map[string]Language, len(cfg.Languages))
	for _, l := range cfg.Languages {
		user[strings.ToLower(l.Code)] = l
	}

	merged := make([]Language, 0, len(defaults.Languages))
	for _, d := range defaults.Languages {
		l, ok := user[d.Code]
		if !ok {
			merged = append(merged, d)
			continue
		}
		delete(user, d.Code)
		l.Code = d.Code
		if l.Name == "" {
			l.Name = d.Name
		}
		if l.Format == "" {
			l.Format = d.Format
		}
		if l.NewsURL == "" {
			l.NewsURL = d.NewsURL
		}
		if l.LiveURL == "" {
			l.LiveURL = d.LiveURL
		}
		merged = append(merged, l)
	}
	// Unknown codes are kept so validate can report them.
	for _, l := range cfg.Languages {
		if _, ok := user[strings.ToLower(l.Code)]; ok {
			merged = append(merged, l)
		}
	}
	cfg.Languages = merged
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	if _, err := registry.Parse(cfg.Language); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	validFormats := map[string]bool{"": true, "json": true, "rss": true}
	for i, l := range cfg.Languages {
		if _, err := registry.Parse(l.Code); err != nil {
			return fmt.Errorf("languages[%d]: %w", i, err)
		}
		if !validFormats[l.Format] {
			return fmt.Errorf("language %q: unknown format %q (valid: json, rss)", l.Code, l.Format)
		}
		for field, raw := range map[string]string{"news_url": l.NewsURL, "live_url": l.LiveURL} {
			if raw == "" {
				return fmt.Errorf("language %q: %s is required", l.Code, field)
			}
			u, err := url.Parse(raw)
			if err != nil {
				return fmt.Errorf("language %q: invalid %s: %w", l.Code, field, err)
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return fmt.Errorf("language %q: %s scheme must be http or https, got %q", l.Code, field, u.Scheme)
			}
		}
	}
	return nil
}
