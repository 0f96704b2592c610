package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/newsportal/internal/browser"
	"github.com/matheuskafuri/newsportal/internal/lifecycle"
	"github.com/matheuskafuri/newsportal/internal/news"
	"github.com/matheuskafuri/newsportal/internal/registry"
	"github.com/matheuskafuri/newsportal/internal/speech"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeHelp
)

type App struct {
	ctrl    *lifecycle.Controller
	reg     *registry.Registry
	speaker *speech.Adapter
	logger  *slog.Logger
	open    func(string) error

	snap   lifecycle.Snapshot
	cursor int
	focus  focusPane
	mode   mode

	width  int
	height int

	spinner spinner.Model
	langBar langBar

	// State
	previewScroll int
	notice        string
	now           func() time.Time
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Controller *lifecycle.Controller
	Registry   *registry.Registry
	Speaker    *speech.Adapter
	Logger     *slog.Logger
	// Open launches URLs; defaults to browser.Open.
	Open func(string) error
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Open == nil {
		opts.Open = browser.Open
	}
	if opts.Speaker == nil {
		opts.Speaker = speech.NewAdapter(nil, opts.Logger)
	}

	return &App{
		ctrl:    opts.Controller,
		reg:     opts.Registry,
		speaker: opts.Speaker,
		logger:  opts.Logger,
		open:    opts.Open,
		snap:    opts.Controller.Snapshot(),
		spinner: sp,
		langBar: newLangBar(opts.Registry),
		now:     time.Now,
	}
}

func (a *App) Init() tea.Cmd {
	req := a.ctrl.Mount()
	a.sync()
	return tea.Batch(a.fetchCmd(req), a.scheduleTick(), a.spinner.Tick)
}

// fetchCmd runs req off the event loop; the result comes back as a message.
func (a *App) fetchCmd(req lifecycle.Request) tea.Cmd {
	ctrl := a.ctrl
	return func() tea.Msg {
		return fetchDoneMsg{result: ctrl.Fetch(context.Background(), req)}
	}
}

// scheduleTick arms the refresh timer for the current generation.
func (a *App) scheduleTick() tea.Cmd {
	gen := a.ctrl.TimerGeneration()
	return tea.Tick(a.ctrl.Interval(), func(time.Time) tea.Msg {
		return refreshTickMsg{gen: gen}
	})
}

func (a *App) sync() {
	a.snap = a.ctrl.Snapshot()
	if a.cursor >= len(a.snap.Articles) {
		a.cursor = max(0, len(a.snap.Articles)-1)
	}
}

func (a *App) loading() bool {
	return a.snap.State == lifecycle.Loading
}

func (a *App) selectLanguage(lang registry.Language) tea.Cmd {
	req, ok := a.ctrl.SetLanguage(lang)
	if !ok {
		return nil
	}
	a.cursor = 0
	a.previewScroll = 0
	a.sync()
	return tea.Batch(a.fetchCmd(req), a.scheduleTick(), a.spinner.Tick)
}

func (a *App) refresh() tea.Cmd {
	req := a.ctrl.Refresh()
	a.sync()
	return tea.Batch(a.fetchCmd(req), a.spinner.Tick)
}

func (a *App) openCmd(url string) tea.Cmd {
	open := a.open
	return func() tea.Msg {
		if err := open(url); err != nil {
			return noticeMsg{text: err.Error()}
		}
		return nil
	}
}

func (a *App) speakSelected() {
	article := a.selected()
	if article == nil {
		return
	}
	err := a.speaker.Speak(news.SpeechText(*article), a.snap.Language)
	switch {
	case errors.Is(err, speech.ErrUnsupported):
		a.notice = "Text-to-speech not supported: install espeak-ng or set speech.command"
	case err != nil:
		a.logger.Warn("speech failed", "err", err)
		a.notice = err.Error()
	default:
		a.notice = "Speaking: " + truncateStr(article.Title, 40)
	}
}

func (a *App) selected() *news.Article {
	if len(a.snap.Articles) == 0 || a.cursor >= len(a.snap.Articles) {
		return nil
	}
	return &a.snap.Articles[a.cursor]
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.ctrl.Stop()
	a.speaker.Stop()
	return a, tea.Quit
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky notice on any keypress
		a.notice = ""
		return a.handleKey(msg)

	case fetchDoneMsg:
		if a.ctrl.Resolve(msg.result) {
			a.sync()
		}
		return a, nil

	case refreshTickMsg:
		req, ok := a.ctrl.Tick(msg.gen)
		if !ok {
			return a, nil
		}
		a.sync()
		return a, tea.Batch(a.fetchCmd(req), a.scheduleTick(), a.spinner.Tick)

	case noticeMsg:
		a.notice = msg.text
		return a, nil

	case spinner.TickMsg:
		if a.loading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a.quit()
	}

	if a.mode == modeHelp {
		switch msg.String() {
		case "?", "esc":
			a.mode = modeNormal
		case "q":
			return a.quit()
		}
		return a, nil
	}

	switch msg.String() {
	case "q":
		return a.quit()
	case "1", "2", "3":
		if lang, ok := a.langBar.at(int(msg.String()[0] - '0')); ok {
			return a, a.selectLanguage(lang)
		}
		return a, nil
	case "right":
		return a, a.selectLanguage(a.langBar.step(a.snap.Language, 1))
	case "left":
		return a, a.selectLanguage(a.langBar.step(a.snap.Language, -1))
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.snap.Articles)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "o", "enter":
		if article := a.selected(); article != nil {
			return a, a.openCmd(article.Link)
		}
		return a, nil
	case "l":
		return a, a.openCmd(a.reg.Lookup(a.snap.Language).LiveURL)
	case "r":
		return a, a.refresh()
	case "s":
		a.speakSelected()
		return a, nil
	case "x":
		a.speaker.Stop()
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  newsportal")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	// Header
	headerLeft := headerStyle.Render("newsportal") + "  " + a.langBar.render(a.snap.Language)
	headerRight := headerDateStyle.Render(a.now().Format("Jan 2 15:04"))
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	rows := []string{header}
	if a.snap.Error != "" {
		rows = append(rows, errorBannerStyle.Width(a.width).Render(a.snap.Error))
	}

	// Layout calculations
	statusHeight := 1
	contentHeight := a.height - len(rows) - statusHeight - 2 // borders
	if contentHeight < 3 {
		contentHeight = 3
	}

	liveWidth := max(26, a.width/5)
	listWidth := int(float64(a.width-liveWidth) * 0.4)
	previewWidth := a.width - liveWidth - listWidth

	// List pane
	innerListW := listWidth - 4 // border + padding
	var listContent string
	if a.loading() {
		listContent = lipglossCenter(a.spinner.View()+" Loading news…", innerListW, contentHeight)
	} else {
		listContent = renderList(a.snap.Articles, a.cursor, contentHeight, innerListW)
	}

	listStyle := listPaneStyle
	previewStyle := previewPaneStyle
	if a.focus == focusList {
		listStyle = listPaneActiveStyle
	} else {
		previewStyle = previewPaneActiveStyle
	}
	listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	// Preview pane
	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(a.selected(), innerPreviewW, contentHeight, a.previewScroll)
	previewPane := previewStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	// Live pane
	ep := a.reg.Lookup(a.snap.Language)
	liveContent := renderLive(a.reg.DisplayName(a.snap.Language), ep.LiveURL, a.snap.LastUpdated, liveWidth-4, contentHeight)
	livePane := livePaneStyle.Width(liveWidth - 2).Height(contentHeight).Render(liveContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane, livePane)

	status := renderStatusBar(len(a.snap.Articles), a.reg.DisplayName(a.snap.Language), a.loading(), a.notice, a.width)

	rows = append(rows, content, status)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("newsportal")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Language") + "\n" +
		"  1/2/3         English / हिन्दी / தமிழ்\n" +
		"  ←/→           Previous / next language\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Navigate article list\n" +
		"  tab           Switch focus between list and preview\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open article in browser\n" +
		"  l             Open live video stream\n" +
		"  s             Listen to article\n" +
		"  x             Stop speaking\n" +
		"  r             Refresh news\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

