package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matheuskafuri/newsportal/internal/registry"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if len(cfg.Languages) != 3 {
		t.Errorf("expected 3 default languages, got %d", len(cfg.Languages))
	}
	if cfg.RefreshInterval != "1h" {
		t.Errorf("expected refresh_interval 1h, got %q", cfg.RefreshInterval)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestDefaultsDoNotEmbedKeys(t *testing.T) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		t.Fatalf("reading defaults: %v", err)
	}
	if strings.Contains(string(data), "pub_") {
		t.Error("default config must not contain a literal API key")
	}
}

func TestRefreshDuration(t *testing.T) {
	cfg := &Config{RefreshInterval: "30m"}
	if d := cfg.RefreshDuration(); d != 30*time.Minute {
		t.Errorf("expected 30m, got %v", d)
	}

	cfg.RefreshInterval = "invalid"
	if d := cfg.RefreshDuration(); d != time.Hour {
		t.Errorf("expected 1h default for invalid interval, got %v", d)
	}

	cfg.RefreshInterval = "-5m"
	if d := cfg.RefreshDuration(); d != time.Hour {
		t.Errorf("expected 1h default for negative interval, got %v", d)
	}
}

func TestFetchTimeoutDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"5s", 5 * time.Second},
		{"", 15 * time.Second},
		{"soon", 15 * time.Second},
	}
	for _, tt := range tests {
		cfg := &Config{FetchTimeout: tt.input}
		if got := cfg.FetchTimeoutDuration(); got != tt.want {
			t.Errorf("FetchTimeoutDuration(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDefaultLanguage(t *testing.T) {
	if got := (&Config{Language: "ta"}).DefaultLanguage(); got != registry.Tamil {
		t.Errorf("expected ta, got %q", got)
	}
	if got := (&Config{Language: "xx"}).DefaultLanguage(); got != registry.English {
		t.Errorf("expected en fallback, got %q", got)
	}
}

func TestEndpointsExpandEnv(t *testing.T) {
	t.Setenv("NEWSPORTAL_TEST_KEY", "secret")
	cfg := &Config{Languages: []Language{
		{Code: "hi", Name: "हिन्दी", NewsURL: "https://api.example.com/news?apikey=${NEWSPORTAL_TEST_KEY}&language=hi", LiveURL: "https://live.example.com"},
		{Code: "ta", NewsURL: "https://api.example.com/news?apikey=${NEWSPORTAL_UNSET_KEY}", LiveURL: "https://live.example.com"},
	}}

	eps, missing := cfg.Endpoints()
	if len(eps) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(eps))
	}
	if eps[0].NewsURL != "https://api.example.com/news?apikey=secret&language=hi" {
		t.Errorf("unexpected expanded url %q", eps[0].NewsURL)
	}
	if len(missing) != 1 || missing[0] != "NEWSPORTAL_UNSET_KEY" {
		t.Errorf("expected NEWSPORTAL_UNSET_KEY reported missing, got %v", missing)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `language: hi
refresh_interval: 2h
languages:
  - code: en
    format: rss
    news_url: https://feeds.example.com/rss.xml
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RefreshInterval != "2h" {
		t.Errorf("expected 2h, got %s", cfg.RefreshInterval)
	}
	if cfg.FetchTimeout != "15s" {
		t.Errorf("expected fetch_timeout filled from defaults, got %q", cfg.FetchTimeout)
	}
	if len(cfg.Languages) != 3 {
		t.Fatalf("expected default languages to be merged, got %d total", len(cfg.Languages))
	}
	en := cfg.Languages[0]
	if en.NewsURL != "https://feeds.example.com/rss.xml" || en.Format != "rss" {
		t.Errorf("user entry should override default: %+v", en)
	}
	if en.Name != "English" || en.LiveURL == "" {
		t.Errorf("missing fields should come from defaults: %+v", en)
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Languages) != 3 {
		t.Errorf("expected defaults, got %d languages", len(cfg.Languages))
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("language: en\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("NEWSPORTAL_DOTENV_KEY=fromfile\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("NEWSPORTAL_DOTENV_KEY") })

	if _, err := Load(cfgPath); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("NEWSPORTAL_DOTENV_KEY"); got != "fromfile" {
		t.Errorf("expected .env value loaded, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	valid := Language{Code: "en", NewsURL: "https://a.example.com", LiveURL: "https://b.example.com"}

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"ok", Config{Language: "en", Languages: []Language{valid}}, ""},
		{"bad default language", Config{Language: "fr"}, "unknown language"},
		{"unknown code", Config{Language: "en", Languages: []Language{{Code: "de", NewsURL: "https://x", LiveURL: "https://y"}}}, "unknown language"},
		{"bad format", Config{Language: "en", Languages: []Language{{Code: "en", Format: "xml", NewsURL: "https://x", LiveURL: "https://y"}}}, "unknown format"},
		{"bad scheme", Config{Language: "en", Languages: []Language{{Code: "en", NewsURL: "ftp://x", LiveURL: "https://y"}}}, "scheme"},
		{"missing url", Config{Language: "en", Languages: []Language{{Code: "en", NewsURL: "https://x"}}}, "live_url is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
