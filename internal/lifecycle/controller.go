// Package lifecycle owns the refresh state machine: when a fetch starts,
// which result is current, and which refresh timer is live.
//
// A Controller is not safe for concurrent use. The owning event loop calls
// the trigger methods and Resolve; only Fetch may run elsewhere.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/matheuskafuri/newsportal/internal/news"
	"github.com/matheuskafuri/newsportal/internal/registry"
)

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Trigger records what started a fetch. It does not change pipeline behaviour.
type Trigger int

const (
	TriggerMount Trigger = iota
	TriggerLanguage
	TriggerTimer
	TriggerManual
)

func (t Trigger) String() string {
	switch t {
	case TriggerMount:
		return "mount"
	case TriggerLanguage:
		return "language"
	case TriggerTimer:
		return "timer"
	case TriggerManual:
		return "manual"
	}
	return "unknown"
}

// NeverUpdated is the LastUpdated value before the first successful fetch.
const NeverUpdated = "—"

// ErrorPrefix starts every failure message.
const ErrorPrefix = "Failed to load news: "

// Snapshot is a copy of the controller's display state.
type Snapshot struct {
	State       State
	Language    registry.Language
	Articles    []news.Article
	Error       string
	LastUpdated string
	Seq         uint64
}

// Request is one fetch attempt issued by the controller.
type Request struct {
	Seq      uint64
	Language registry.Language
	Trigger  Trigger
}

// Result carries a finished Request back to the controller.
type Result struct {
	Request  Request
	Articles []news.Article
	Err      error
}

type Options struct {
	Language registry.Language
	Interval time.Duration
	Now      func() time.Time
	Logger   *slog.Logger
}

type Controller struct {
	fetcher  news.Fetcher
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger

	state       State
	lang        registry.Language
	articles    []news.Article
	errMsg      string
	lastUpdated string

	seq      uint64
	timerGen uint64
	timerOn  bool
}

func New(fetcher news.Fetcher, opts Options) *Controller {
	if opts.Language == "" {
		opts.Language = registry.English
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Controller{
		fetcher:     fetcher,
		interval:    opts.Interval,
		now:         opts.Now,
		logger:      opts.Logger,
		lang:        opts.Language,
		lastUpdated: NeverUpdated,
	}
}

// Interval is the period between timer-triggered refreshes.
func (c *Controller) Interval() time.Duration { return c.interval }

func (c *Controller) Language() registry.Language { return c.lang }

// TimerGeneration identifies the live refresh timer. Ticks carrying any
// other generation belong to a cancelled timer.
func (c *Controller) TimerGeneration() uint64 { return c.timerGen }

// Mount starts the first timer and issues the initial fetch.
func (c *Controller) Mount() Request {
	c.restartTimer()
	return c.begin(TriggerMount)
}

// SetLanguage switches language, replacing the refresh timer and issuing a
// fetch. Selecting the current language does nothing.
func (c *Controller) SetLanguage(lang registry.Language) (Request, bool) {
	if lang == c.lang {
		return Request{}, false
	}
	c.lang = lang
	c.restartTimer()
	return c.begin(TriggerLanguage), true
}

// Refresh issues a manual fetch. The timer is left alone.
func (c *Controller) Refresh() Request {
	return c.begin(TriggerManual)
}

// Tick handles a timer firing. Ticks from a cancelled timer are dropped.
func (c *Controller) Tick(gen uint64) (Request, bool) {
	if !c.timerOn || gen != c.timerGen {
		c.logger.Debug("dropping tick from cancelled timer", "gen", gen, "live", c.timerGen)
		return Request{}, false
	}
	return c.begin(TriggerTimer), true
}

// Stop cancels the live timer. Pending results still resolve normally.
func (c *Controller) Stop() {
	c.timerGen++
	c.timerOn = false
}

func (c *Controller) restartTimer() {
	c.timerGen++
	c.timerOn = true
}

// begin moves to Loading, clearing articles and error before any network
// activity so stale content never sits next to the loading indicator.
func (c *Controller) begin(trigger Trigger) Request {
	c.seq++
	c.state = Loading
	c.articles = nil
	c.errMsg = ""
	req := Request{Seq: c.seq, Language: c.lang, Trigger: trigger}
	c.logger.Info("fetching news", "seq", req.Seq, "lang", req.Language, "trigger", trigger)
	return req
}

// Fetch runs the pipeline for req. It does not read or write controller
// state and may be called from any goroutine.
func (c *Controller) Fetch(ctx context.Context, req Request) Result {
	articles, err := c.fetcher.Fetch(ctx, req.Language)
	return Result{Request: req, Articles: articles, Err: err}
}

// Resolve applies res if it answers the latest request and reports
// whether the snapshot changed. Older results are discarded.
func (c *Controller) Resolve(res Result) bool {
	if res.Request.Seq != c.seq {
		c.logger.Debug("discarding stale result", "seq", res.Request.Seq, "latest", c.seq, "lang", res.Request.Language)
		return false
	}

	if res.Err != nil {
		c.state = Failed
		c.articles = nil
		c.errMsg = ErrorPrefix + news.Describe(res.Err)
		c.logger.Warn("news fetch failed", "seq", res.Request.Seq, "lang", res.Request.Language, "err", res.Err)
		return true
	}

	c.state = Loaded
	c.articles = res.Articles
	c.errMsg = ""
	c.lastUpdated = c.now().Format("15:04:05")
	c.logger.Info("news loaded", "seq", res.Request.Seq, "lang", res.Request.Language, "count", len(res.Articles))
	return true
}

func (c *Controller) Snapshot() Snapshot {
	articles := make([]news.Article, len(c.articles))
	copy(articles, c.articles)
	return Snapshot{
		State:       c.state,
		Language:    c.lang,
		Articles:    articles,
		Error:       c.errMsg,
		LastUpdated: c.lastUpdated,
		Seq:         c.seq,
	}
}
