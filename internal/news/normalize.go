package news

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// MaxArticles caps the number of articles kept from one response.
const MaxArticles = 10

// Article is the provider-independent shape every response is mapped to.
// Description may contain markup; see PlainText.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// NormalizeJSON maps an aggregator JSON body to articles. The candidate
// list is "results" when present, otherwise "items".
func NormalizeJSON(body []byte) ([]Article, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if dec.More() {
		return nil, &ParseError{Err: fmt.Errorf("trailing data after JSON value")}
	}

	raw, err := candidates(doc)
	if err != nil {
		return nil, err
	}
	return normalize(raw)
}

// NormalizeFeed maps an RSS/Atom/JSON Feed body to articles using the same
// synonym rules as NormalizeJSON.
func NormalizeFeed(parser *gofeed.Parser, body []byte) ([]Article, error) {
	feed, err := parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	raw := make([]any, 0, len(feed.Items))
	for _, item := range feed.Items {
		raw = append(raw, map[string]any{
			"title":       item.Title,
			"description": item.Description,
			"content":     item.Content,
			"link":        item.Link,
		})
	}
	return normalize(raw)
}

func candidates(doc any) ([]any, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, nil
	}
	for _, key := range []string{"results", "items"} {
		v, present := obj[key]
		if !present || v == nil {
			continue
		}
		list, ok := v.([]any)
		if !ok {
			return nil, &ParseError{Err: fmt.Errorf("%q is not a list", key)}
		}
		return list, nil
	}
	return nil, nil
}

func normalize(raw []any) ([]Article, error) {
	if len(raw) > MaxArticles {
		raw = raw[:MaxArticles]
	}
	if len(raw) == 0 {
		return nil, &EmptyResultError{}
	}

	articles := make([]Article, 0, len(raw))
	for _, entry := range raw {
		fields, _ := entry.(map[string]any)
		articles = append(articles, Article{
			Title:       firstOf(fields, "Untitled", "title", "heading"),
			Description: firstOf(fields, "", "description", "content"),
			Link:        firstOf(fields, "", "link", "url"),
		})
	}
	return articles, nil
}

// firstOf returns the first non-empty scalar among keys, or fallback.
// Numbers and true are rendered as text; empty strings, false, null,
// objects and lists count as absent. Control characters are stripped
// before the emptiness check.
func firstOf(fields map[string]any, fallback string, keys ...string) string {
	for _, k := range keys {
		switch v := fields[k].(type) {
		case string:
			if v = stripControl(v); v != "" {
				return v
			}
		case json.Number:
			if f, err := v.Float64(); err == nil && f != 0 {
				return v.String()
			}
		case bool:
			if v {
				return "true"
			}
		}
	}
	return fallback
}
