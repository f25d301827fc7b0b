package ferris

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/aretw0/ferris/pkg/adapters/markdown"
	"github.com/aretw0/ferris/pkg/domain"
	"github.com/aretw0/ferris/pkg/ports"
)

//go:embed lessons/*.md
var lessonFiles embed.FS

// Tour is the high-level entry point for the ferris library.
// It resolves menu input and serves lesson content to a session loop.
type Tour struct {
	loader ports.LessonLoader
	logger *slog.Logger
}

// Option defines a functional option for configuring the Tour.
type Option func(*Tour)

// WithLoader injects a custom LessonLoader, bypassing the embedded lessons.
func WithLoader(l ports.LessonLoader) Option {
	return func(t *Tour) {
		t.loader = l
	}
}

// WithLogger sets a custom structured logger for the tour.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tour) {
		t.logger = logger
	}
}

// New initializes a Tour.
// By default, it serves the lessons compiled into the binary.
func New(opts ...Option) (*Tour, error) {
	t := &Tour{}

	for _, opt := range opts {
		opt(t)
	}

	if t.loader == nil {
		loader, err := EmbeddedLessons()
		if err != nil {
			return nil, err
		}
		t.loader = loader
	}

	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return t, nil
}

// EmbeddedLessons returns a loader over the lessons shipped with the binary.
func EmbeddedLessons() (*markdown.Loader, error) {
	sub, err := fs.Sub(lessonFiles, "lessons")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded lessons: %w", err)
	}
	loader, err := markdown.New(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded lessons: %w", err)
	}
	return loader, nil
}

// Resolve maps raw menu input to a menu action.
func (t *Tour) Resolve(input string) domain.MenuAction {
	action := domain.Resolve(input)
	t.logger.Debug("Menu Resolved", "input", input, "action", action.Variant())
	return action
}

// Lesson returns the lesson attached to an action.
func (t *Tour) Lesson(action domain.MenuAction) (domain.Lesson, error) {
	return t.loader.Lesson(action)
}

// Lessons returns every lesson in menu priority order.
func (t *Tour) Lessons() ([]domain.Lesson, error) {
	return t.loader.Lessons()
}
