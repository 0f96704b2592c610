package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matheuskafuri/newsportal/internal/config"
	"github.com/matheuskafuri/newsportal/internal/lifecycle"
	"github.com/matheuskafuri/newsportal/internal/news"
	"github.com/matheuskafuri/newsportal/internal/registry"
	"github.com/matheuskafuri/newsportal/internal/speech"
	"github.com/robfig/cron/v3"
)

func TestResolveLanguage(t *testing.T) {
	cfg := &config.Config{Language: "hi"}
	tests := []struct {
		flag string
		want registry.Language
		err  bool
	}{
		{"", registry.Hindi, false},
		{"ta", registry.Tamil, false},
		{"EN", registry.English, false},
		{"fr", "", true},
	}
	for _, tt := range tests {
		got, err := resolveLanguage(tt.flag, cfg)
		if tt.err {
			if err == nil {
				t.Errorf("resolveLanguage(%q): expected error", tt.flag)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("resolveLanguage(%q) = %q, %v; want %q", tt.flag, got, err, tt.want)
		}
	}
}

func TestWriteHeadlines(t *testing.T) {
	var buf bytes.Buffer
	writeHeadlines(&buf, lifecycle.Snapshot{
		Language:    registry.English,
		LastUpdated: "10:00:00",
		Articles: []news.Article{
			{Title: "First", Description: "<p>Body &amp; more</p>", Link: "https://example.com/1"},
			{Title: "Untitled"},
		},
	})
	out := buf.String()
	for _, want := range []string{"Headlines (en) · updated 10:00:00", " 1. First", "Body & more", "https://example.com/1", " 2. Untitled"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<p>") {
		t.Error("markup should be stripped")
	}
}

func TestWriteHeadlinesError(t *testing.T) {
	var buf bytes.Buffer
	writeHeadlines(&buf, lifecycle.Snapshot{LastUpdated: "—", Error: "Failed to load news: HTTP 500"})
	if got := buf.String(); got != "[—] Failed to load news: HTTP 500\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestEverySpec(t *testing.T) {
	sched := everySchedule(time.Hour)
	if sched != "@every 1h0m0s" {
		t.Errorf("everySchedule = %q", sched)
	}
	if _, err := cron.ParseStandard(sched); err != nil {
		t.Errorf("cron rejected %q: %v", sched, err)
	}
}

type countingFetcher struct{ calls chan registry.Language }

func (f *countingFetcher) Fetch(ctx context.Context, lang registry.Language) ([]news.Article, error) {
	f.calls <- lang
	return []news.Article{{Title: "t"}}, nil
}

func TestWatchEmitsInitialSnapshot(t *testing.T) {
	f := &countingFetcher{calls: make(chan registry.Language, 4)}
	ctrl := lifecycle.New(f, lifecycle.Options{Language: registry.Tamil, Interval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	emitted := make(chan lifecycle.Snapshot, 1)
	done := make(chan error, 1)
	sched := cron.New()
	defer sched.Stop()
	go func() {
		done <- watch(ctx, ctrl, sched, func(s lifecycle.Snapshot) { emitted <- s })
	}()

	select {
	case s := <-emitted:
		if s.State != lifecycle.Loaded || s.Language != registry.Tamil {
			t.Errorf("unexpected snapshot %+v", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot emitted")
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watch returned %v", err)
	}
	if len(f.calls) != 1 {
		t.Errorf("expected exactly one fetch, got %d", len(f.calls))
	}
}

func TestWriteVoiceChoices(t *testing.T) {
	var buf bytes.Buffer
	writeVoiceChoices(&buf, []speech.Voice{
		{ID: "en-us", Name: "English (America)", Locale: "en-US"},
		{ID: "hi", Name: "Hindi", Locale: "hi-IN"},
	})
	out := buf.String()
	if !strings.Contains(out, "Hindi [hi-IN]") {
		t.Errorf("expected Hindi voice for hi:\n%s", out)
	}
	if !strings.Contains(out, "ta-IN") || !strings.Contains(out, "English (America) [en-US]") {
		t.Errorf("expected English fallback for ta:\n%s", out)
	}
}
