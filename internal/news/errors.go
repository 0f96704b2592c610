package news

import (
	"errors"
	"fmt"
	"time"
)

// HTTPError reports a non-2xx response from a news endpoint.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// ParseError reports a response body that could not be decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyResultError reports a well-formed response with no articles.
type EmptyResultError struct{}

func (e *EmptyResultError) Error() string { return "no articles found" }

// TimeoutError reports a request that did not complete in time.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.After)
}

// RequestError reports a transport failure other than a timeout.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Describe renders err as the short user-facing text shown after
// "Failed to load news: ".
func Describe(err error) string {
	var (
		httpErr    *HTTPError
		parseErr   *ParseError
		emptyErr   *EmptyResultError
		timeoutErr *TimeoutError
		reqErr     *RequestError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &emptyErr):
		return "No articles found"
	case errors.As(err, &httpErr):
		return fmt.Sprintf("HTTP %d", httpErr.StatusCode)
	case errors.As(err, &timeoutErr):
		return fmt.Sprintf("Request timed out after %s", timeoutErr.After)
	case errors.As(err, &parseErr):
		return "Invalid response from news provider"
	case errors.As(err, &reqErr):
		return reqErr.Err.Error()
	default:
		return err.Error()
	}
}
