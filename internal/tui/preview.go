package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsportal/internal/news"
)

func renderPreview(article *news.Article, width, height, scroll int) string {
	if article == nil {
		return lipglossCenter("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(article.Title)

	// Provider descriptions are untrusted markup; only their text is shown.
	desc := news.PlainText(article.Description)
	if desc == "" {
		desc = "(No description available)"
	}
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))

	parts := []string{title, body}
	if article.Link != "" {
		parts = append(parts, "", previewLinkStyle.Width(contentWidth).Render("Read more: "+article.Link))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	return clip(content, height, scroll)
}

func renderLive(name, liveURL, lastUpdated string, width, height int) string {
	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	lines := []string{
		liveTitleStyle.Render("Live Video"),
		"",
		liveBodyStyle.Render(name),
		previewLinkStyle.UnsetMarginTop().Width(contentWidth).Render(wrapText(liveURL, contentWidth)),
		"",
		helpDimStyle.Render("l open stream"),
		"",
		helpDimStyle.Render("Last updated: " + lastUpdated),
	}
	return clip(strings.Join(lines, "\n"), height, 0)
}

// clip applies a scroll offset and pads or cuts content to height lines.
func clip(content string, height, scroll int) string {
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// wrapText breaks s on spaces so no line exceeds width display cells.
// Unbroken runs longer than width are hard-split.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := ""
	for _, w := range words {
		for lipgloss.Width(w) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			head, rest := splitAtWidth(w, width)
			lines = append(lines, head)
			w = rest
		}
		switch {
		case line == "":
			line = w
		case lipgloss.Width(line)+1+lipgloss.Width(w) > width:
			lines = append(lines, line)
			line = w
		default:
			line += " " + w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func splitAtWidth(s string, width int) (string, string) {
	runes := []rune(s)
	for i := range runes {
		if lipgloss.Width(string(runes[:i+1])) > width {
			if i == 0 {
				return string(runes[:1]), string(runes[1:])
			}
			return string(runes[:i]), string(runes[i:])
		}
	}
	return s, ""
}
