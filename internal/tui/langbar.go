package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsportal/internal/registry"
)

type langTab struct {
	lang registry.Language
	name string
}

// langBar renders the language selector tabs.
type langBar struct {
	tabs []langTab
}

func newLangBar(reg *registry.Registry) langBar {
	var tabs []langTab
	for _, lang := range registry.All() {
		tabs = append(tabs, langTab{lang: lang, name: reg.DisplayName(lang)})
	}
	return langBar{tabs: tabs}
}

// at returns the language for a 1-based tab number.
func (b langBar) at(n int) (registry.Language, bool) {
	if n < 1 || n > len(b.tabs) {
		return "", false
	}
	return b.tabs[n-1].lang, true
}

func (b langBar) index(lang registry.Language) int {
	for i, t := range b.tabs {
		if t.lang == lang {
			return i
		}
	}
	return 0
}

// step returns the language delta tabs away from current, wrapping around.
func (b langBar) step(current registry.Language, delta int) registry.Language {
	n := len(b.tabs)
	i := ((b.index(current)+delta)%n + n) % n
	return b.tabs[i].lang
}

func (b langBar) render(active registry.Language) string {
	sep := tabSeparatorStyle.Render(" ")
	var row string
	for i, t := range b.tabs {
		style := tabInactiveStyle
		if t.lang == active {
			style = tabActiveStyle
		}
		if i > 0 {
			row += sep
		}
		row += style.Render(fmt.Sprintf("%d %s", i+1, t.name))
	}
	return lipgloss.NewStyle().Background(colorBar).Render(row)
}
