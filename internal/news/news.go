package news

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/matheuskafuri/newsportal/internal/registry"
	"github.com/mmcdole/gofeed"
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 8 << 20

type Fetcher interface {
	Fetch(ctx context.Context, lang registry.Language) ([]Article, error)
}

// HTTPFetcher fetches one endpoint per language and normalizes the body.
type HTTPFetcher struct {
	registry *registry.Registry
	client   *http.Client
	parser   *gofeed.Parser
	timeout  time.Duration
	logger   *slog.Logger
}

type Option func(*HTTPFetcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) { f.timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(f *HTTPFetcher) { f.logger = l }
}

func NewHTTPFetcher(reg *registry.Registry, opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		registry: reg,
		client:   http.DefaultClient,
		parser:   gofeed.NewParser(),
		timeout:  15 * time.Second,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *HTTPFetcher) Fetch(ctx context.Context, lang registry.Language) ([]Article, error) {
	ep := f.registry.Lookup(lang)

	reqCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, ep.NewsURL, nil)
	if err != nil {
		return nil, &RequestError{Err: fmt.Errorf("building request for %s: %w", lang, stripURL(err))}
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.transportError(ctx, reqCtx, start, err)
	}
	defer resp.Body.Close()

	f.logger.Debug("news response", "lang", lang, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, f.transportError(ctx, reqCtx, start, err)
	}

	if ep.Format == registry.FormatRSS {
		return NormalizeFeed(f.parser, body)
	}
	return NormalizeJSON(body)
}

// transportError classifies a failed request. Only the fetcher's own
// deadline reports the configured timeout; other timeouts report the time
// actually spent.
func (f *HTTPFetcher) transportError(parent, reqCtx context.Context, start time.Time, err error) error {
	if parent.Err() == nil && errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{After: f.timeout}
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{After: time.Since(start).Round(time.Millisecond)}
	}
	return &RequestError{Err: stripURL(err)}
}

// stripURL drops the request URL from err. Endpoint URLs may carry API
// keys in their query string, and errors end up on screen and in logs.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
