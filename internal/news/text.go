package news

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// PlainText converts provider markup into display text. Tags are dropped,
// entities decoded and whitespace collapsed. Script and style bodies are
// removed entirely, as are control characters decoded from entities.
func PlainText(markup string) string {
	if !strings.ContainsAny(markup, "<&") {
		return strings.Join(strings.Fields(stripControl(markup)), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return strings.Join(strings.Fields(stripControl(markup)), " ")
	}
	doc.Find("script, style, noscript, iframe").Remove()
	doc.Find("br, p, div, li, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		s.AfterNodes(&html.Node{Type: html.TextNode, Data: " "})
	})
	return strings.Join(strings.Fields(stripControl(doc.Text())), " ")
}

// stripControl removes C0 and C1 control characters other than tab, CR and
// newline, so provider text cannot emit terminal escape sequences.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// SpeechText is the text read aloud for an article.
func SpeechText(a Article) string {
	desc := PlainText(a.Description)
	if desc == "" {
		return a.Title
	}
	return a.Title + ". " + desc
}
