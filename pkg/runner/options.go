package runner

import (
	"log/slog"

	"github.com/aretw0/ferris/pkg/observability"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithRenderer configures the content renderer (e.g. TUI, Markdown).
// It only applies to the default TextHandler.
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithMetrics configures the session counters.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Runner) {
		r.Metrics = m
	}
}

// WithHeader sets text shown above the menu each time it is drawn.
func WithHeader(header string) Option {
	return func(r *Runner) {
		r.Header = header
	}
}
