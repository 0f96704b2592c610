package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(articleCount int, language string, loading bool, notice string, width int) string {
	left := fmt.Sprintf(" %d articles · %s", articleCount, language)
	if loading {
		left = " loading · " + language
	}
	if notice != "" {
		left = " " + lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(notice)
	}

	right := " r refresh  s listen  o open  ? help  q quit "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
