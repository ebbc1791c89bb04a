package httpguard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/guardkit"
)

// HandlerFunc handles an HTTP request and may fail. A non-nil return value
// is classified and written by Respond; the handler must not have written a
// response of its own in that case.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

type config struct {
	logger *slog.Logger
}

// Option configures Wrap.
type Option func(*config)

// WithLogger supplies an external slog.Logger instance. If nil, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Wrap adapts h into a standard http.Handler. When h returns an error, the
// failure is logged (warn for client errors, error for server errors) and
// written as a JSON response. Wrap panics when h is nil.
func Wrap(h HandlerFunc, opts ...Option) http.Handler {
	guardkit.Must(guardkit.NotNil(h, "handler"))

	cfg := config{logger: newNoopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = newNoopLogger()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		status := StatusCode(err)
		cfg.logger.LogAttrs(r.Context(), levelFor(status), "request error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Any("error", err),
		)
		Respond(w, err)
	})
}

// levelFor maps HTTP status codes to appropriate log levels.
func levelFor(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// noopHandler is a slog.Handler that discards all logs.
type noopHandler struct{}

func (n noopHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (n noopHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n noopHandler) WithGroup(_ string) slog.Handler               { return n }

// newNoopLogger returns a slog.Logger that discards all logs.
func newNoopLogger() *slog.Logger {
	return slog.New(noopHandler{})
}
