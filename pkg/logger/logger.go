package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config controls level, encoding and optional Sentry forwarding.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	Format string     `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig
	// Output defaults to os.Stdout.
	Output io.Writer
}

// FlushFunc drains buffered log destinations. It is safe to call more than once.
type FlushFunc func(ctx context.Context) error

// New builds a logger from cfg. The returned FlushFunc should run on shutdown.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, FlushFunc) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, FormatText) {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	flush := func(context.Context) error { return nil }

	if cfg.Sentry.DSN != "" {
		sentryHandler, err := newSentryHandler(cfg.Sentry)
		if err != nil {
			slog.New(handler).Error("sentry disabled", Error(err))
		} else {
			handler = newMultiHandler(handler, sentryHandler)
			flush = flushSentry
		}
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...)), flush
}

// Error formats err as a log attribute under the "error" key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}
