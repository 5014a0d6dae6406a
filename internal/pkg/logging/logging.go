// Package logging builds the slog loggers used across the service.
//
//	logger := logging.New("info", "json", os.Stderr)
//	logger.InfoContext(ctx, "Course saved", "id", id)
//
// Attributes named password, secret or token, and values that look like
// bearer tokens, are redacted before they reach the handler.
package logging

import (
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// New creates a logger writing to w. level is one of debug, info, warn and
// error (default info); format "text" selects the text handler, anything
// else JSON.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to slog.Level. Unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("dsn"),
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
	)
}
