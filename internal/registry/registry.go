package registry

import (
	"fmt"
	"strings"
)

// Language is a supported news language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Tamil   Language = "ta"
)

// All returns the supported languages in display order.
func All() []Language {
	return []Language{English, Hindi, Tamil}
}

// Parse validates a user-supplied language code.
func Parse(code string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, known := range All() {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q (valid: en, hi, ta)", code)
}

// Format is the body format a news endpoint responds with.
type Format string

const (
	FormatJSON Format = "json"
	FormatRSS  Format = "rss"
)

type Endpoint struct {
	Language Language
	Name     string
	NewsURL  string
	Format   Format
	LiveURL  string
}

// Registry maps each language to its news and live stream endpoints.
type Registry struct {
	endpoints map[Language]Endpoint
}

func New(endpoints []Endpoint) *Registry {
	r := &Registry{endpoints: make(map[Language]Endpoint, len(endpoints))}
	for _, e := range endpoints {
		if e.Format == "" {
			e.Format = FormatJSON
		}
		r.endpoints[e.Language] = e
	}
	return r
}

// Lookup returns the endpoint for lang. Callers only pass languages from
// All(), so a missing entry yields the zero Endpoint.
func (r *Registry) Lookup(lang Language) Endpoint {
	return r.endpoints[lang]
}

// Endpoints returns the registered endpoints in display order.
func (r *Registry) Endpoints() []Endpoint {
	var out []Endpoint
	for _, l := range All() {
		if e, ok := r.endpoints[l]; ok {
			out = append(out, e)
		}
	}
	return out
}

// DisplayName returns the native name for lang, falling back to the code.
func (r *Registry) DisplayName(lang Language) string {
	if e, ok := r.endpoints[lang]; ok && e.Name != "" {
		return e.Name
	}
	return string(lang)
}
