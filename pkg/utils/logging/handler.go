package logging

import (
	"io"
	"log/slog"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/masq"
)

// Format selects the log encoding
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
)

// NewLogger builds a logger writing to w. Phone numbers and fields tagged
// masq:"secret" are redacted in both formats.
func NewLogger(w io.Writer, level slog.Level, format Format, color bool) *slog.Logger {
	redact := masq.New(
		masq.WithTag("secret"),
		masq.WithFieldName("Phone"),
		masq.WithFieldName("ContactPhone"),
	)

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: redact,
		})
	default:
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithColor(color),
			clog.WithReplaceAttr(redact),
		)
	}

	return slog.New(handler)
}
