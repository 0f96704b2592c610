package speech

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/matheuskafuri/newsportal/internal/registry"
)

// ErrUnsupported is returned when no speech engine is available.
var ErrUnsupported = errors.New("text-to-speech is not supported on this system")

type Voice struct {
	ID     string // engine-specific identifier passed back on Speak
	Name   string
	Locale string // BCP 47, e.g. "hi-IN"
}

// Utterance is one unit of text submitted to an engine. A nil Voice means
// the engine default.
type Utterance struct {
	Text   string
	Locale string
	Voice  *Voice
}

// Engine is a host text-to-speech capability.
type Engine interface {
	Available() bool
	Voices() []Voice
	// Speak starts u and returns without waiting for playback to end.
	Speak(u Utterance) error
	// Cancel stops the active utterance, if any.
	Cancel()
}

// Adapter reads text aloud in the voice matching a news language. At most
// one utterance plays at a time; the newest request wins.
type Adapter struct {
	engine Engine
	logger *slog.Logger
}

func NewAdapter(engine Engine, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{engine: engine, logger: logger}
}

func (a *Adapter) Available() bool {
	return a.engine != nil && a.engine.Available()
}

func (a *Adapter) Speak(text string, lang registry.Language) error {
	if !a.Available() {
		return ErrUnsupported
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	locale := LocaleFor(lang)
	u := Utterance{Text: text, Locale: locale}
	if v, ok := SelectVoice(a.engine.Voices(), locale); ok {
		u.Voice = &v
	}

	a.engine.Cancel()
	if err := a.engine.Speak(u); err != nil {
		return fmt.Errorf("speaking: %w", err)
	}

	voice := "default"
	if u.Voice != nil {
		voice = u.Voice.Name
	}
	a.logger.Debug("speaking", "lang", lang, "locale", locale, "voice", voice, "chars", len(text))
	return nil
}

// Stop cancels any active utterance.
func (a *Adapter) Stop() {
	if a.engine != nil {
		a.engine.Cancel()
	}
}

// LocaleFor maps a news language to the locale used for voice selection.
func LocaleFor(lang registry.Language) string {
	switch lang {
	case registry.Hindi:
		return "hi-IN"
	case registry.Tamil:
		return "ta-IN"
	default:
		return "en-US"
	}
}

// SelectVoice picks the first voice whose locale starts with locale, then
// one tagged with the bare language ("hi" for "hi-IN", as espeak reports
// it), then the first English voice, then the first voice of any kind.
func SelectVoice(voices []Voice, locale string) (Voice, bool) {
	for _, v := range voices {
		if strings.HasPrefix(v.Locale, locale) {
			return v, true
		}
	}
	lang, _, _ := strings.Cut(locale, "-")
	for _, v := range voices {
		if v.Locale == lang {
			return v, true
		}
	}
	for _, v := range voices {
		if strings.Contains(v.Locale, "en") {
			return v, true
		}
	}
	if len(voices) > 0 {
		return voices[0], true
	}
	return Voice{}, false
}
