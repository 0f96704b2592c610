package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsportal/internal/news"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrTamil(t *testing.T) {
	got := truncateStr("தமிழ்நாடு", 5)
	if got != "தம..." {
		t.Errorf("truncateStr(Tamil, 5) = %q", got)
	}
}

func TestHostOf(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"https://www.bbc.co.uk/news/world-1", "bbc.co.uk"},
		{"https://example.com", "example.com"},
		{"", ""},
		{"not a url", ""},
	}
	for _, tt := range tests {
		if got := hostOf(tt.link); got != tt.want {
			t.Errorf("hostOf(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}

func TestRenderListScrollsToCursor(t *testing.T) {
	var articles []news.Article
	for _, title := range []string{"a1", "a2", "a3", "a4", "a5"} {
		articles = append(articles, news.Article{Title: title})
	}
	out := renderList(articles, 4, 6, 40)
	if strings.Contains(out, "a1") {
		t.Error("first item should scroll out of view")
	}
	if !strings.Contains(out, "a5") {
		t.Error("cursor item should be visible")
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps", 10)
	for _, line := range strings.Split(got, "\n") {
		if lipgloss.Width(line) > 10 {
			t.Errorf("line %q exceeds width", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != "the quick brown fox jumps" {
		t.Errorf("wrapText lost words: %q", got)
	}

	long := wrapText("https://www.24x7liveindia.com/embed/puthiyathalaimurai", 12)
	for _, line := range strings.Split(long, "\n") {
		if lipgloss.Width(line) > 12 {
			t.Errorf("unbroken run not split: %q", line)
		}
	}
	if wrapText("", 10) != "" {
		t.Error("empty input should wrap to empty")
	}
}

func TestRenderPreviewStripsMarkupAndHidesEmptyLink(t *testing.T) {
	a := &news.Article{Title: "Title", Description: "<p>Hello <script>x()</script><b>world</b></p>"}
	out := renderPreview(a, 60, 20, 0)
	if strings.Contains(out, "<p>") || strings.Contains(out, "x()") {
		t.Errorf("markup leaked into preview: %q", out)
	}
	if !strings.Contains(out, "Hello world") {
		t.Errorf("expected plain text description, got %q", out)
	}
	if strings.Contains(out, "Read more") {
		t.Error("Read more shown for article without link")
	}

	a.Link = "https://example.com/a"
	if out := renderPreview(a, 60, 20, 0); !strings.Contains(out, "Read more") {
		t.Error("Read more missing for article with link")
	}
}
