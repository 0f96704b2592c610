package tui

import "github.com/charmbracelet/lipgloss"

// Palette: ink for text, brand for chrome, live for the stream pane and
// alerts, muted for secondary text.
var (
	colorInk    = lipgloss.AdaptiveColor{Light: "#1F2328", Dark: "#E6E6E6"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8A8F98", Dark: "#6B7079"}
	colorBrand  = lipgloss.AdaptiveColor{Light: "#0B5CAD", Dark: "#5EA8F2"}
	colorLive   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF5C5C"}
	colorRule   = lipgloss.AdaptiveColor{Light: "#D0D4DA", Dark: "#30343B"}
	colorBar    = lipgloss.AdaptiveColor{Light: "#ECEFF3", Dark: "#1B2230"}
	colorAccent = colorLive
	colorWhite  = lipgloss.Color("#FFFFFF")

	pane = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorBrand).PaddingLeft(1)
	headerDateStyle  = lipgloss.NewStyle().Foreground(colorMuted).Align(lipgloss.Right)
	errorBannerStyle = lipgloss.NewStyle().Foreground(colorWhite).Background(colorLive).Bold(true).PaddingLeft(1)

	listPaneStyle          = pane.BorderForeground(colorRule)
	listPaneActiveStyle    = pane.BorderForeground(colorBrand)
	previewPaneStyle       = listPaneStyle
	previewPaneActiveStyle = listPaneActiveStyle
	livePaneStyle          = pane.BorderForeground(colorLive)

	itemTitleStyle    = lipgloss.NewStyle().Foreground(colorInk)
	itemSelectedStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	itemSourceStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	itemTimeStyle     = lipgloss.NewStyle().Foreground(colorMuted)

	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorInk).MarginBottom(1)
	previewBodyStyle  = lipgloss.NewStyle().Foreground(colorInk)
	previewLinkStyle  = lipgloss.NewStyle().Foreground(colorBrand).Underline(true).MarginTop(1)

	liveTitleStyle = lipgloss.NewStyle().Foreground(colorLive).Bold(true)
	liveBodyStyle  = lipgloss.NewStyle().Foreground(colorInk)

	tabActiveStyle    = lipgloss.NewStyle().Foreground(colorWhite).Background(colorBrand).Padding(0, 1).Bold(true)
	tabInactiveStyle  = lipgloss.NewStyle().Foreground(colorMuted).Background(colorBar).Padding(0, 1)
	tabSeparatorStyle = lipgloss.NewStyle().Foreground(colorRule).Background(colorBar)

	statusBarStyle = lipgloss.NewStyle().Background(colorBar).Foreground(colorMuted).Padding(0, 1)
	spinnerStyle   = lipgloss.NewStyle().Foreground(colorLive)

	helpCardStyle = pane.BorderForeground(colorBrand).Padding(1, 3)
	helpDimStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)
