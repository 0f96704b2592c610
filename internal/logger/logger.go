package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// New constructs a text logger writing to w. The level comes from
// NEWSPORTAL_LOG_LEVEL when set, otherwise from level. Every record carries
// a per-process session id.
func New(w io.Writer, level string) *slog.Logger {
	if env := os.Getenv("NEWSPORTAL_LOG_LEVEL"); env != "" {
		level = env
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h).With("session", uuid.NewString())
}

// OpenFile returns a logger appending to path, creating parent dirs. The
// returned closer releases the file.
func OpenFile(path, level string) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, level), f, nil
}

func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
