package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/ferris"
	"github.com/aretw0/ferris/pkg/domain"
	"github.com/aretw0/ferris/pkg/observability"
)

// Title is the first line of the menu screen.
const Title = "Learn about Rust's strengths with annotated code examples"

// Prompt is printed right before the menu input is read.
const Prompt = "Take your pick:"

// GateReads is the number of raw bytes a pagination gate consumes.
// In a cooked terminal that is one key plus Enter.
const GateReads = 2

// Runner handles the menu loop of the tour using provided IO.
// It uses an IOHandler strategy so it can be driven without a real terminal.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Renderer is handed to the default TextHandler.
	Renderer ContentRenderer

	// Metrics counts selections and pages. Optional.
	Metrics *observability.Metrics

	// Header is printed above the menu on every redraw (e.g. a banner).
	Header string

	tour *ferris.Tour
}

// NewRunner creates a new Runner for the given tour.
func NewRunner(tour *ferris.Tour, opts ...Option) *Runner {
	r := &Runner{tour: tour}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout, WithTextHandlerRenderer(r.Renderer))
	}
	return r
}

// Run shows the menu and dispatches selections until Quit is chosen.
// It returns nil on Quit. A failed read (including end of input) is fatal
// and returned wrapped as "input failed".
func (r *Runner) Run(ctx context.Context) error {
	h := r.Handler

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := h.Clear(); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
		if r.Header != "" {
			if err := h.Output(ctx, r.Header); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
		if err := h.Output(ctx, MenuText()); err != nil {
			return fmt.Errorf("output error: %w", err)
		}

		line, err := h.Input(ctx)
		if err != nil {
			return fmt.Errorf("input failed: %w", err)
		}

		action := r.resolve(line)
		r.Metrics.RecordSelection(action)

		// Matches the menu's own enum: "Menu::Ownership pattern recognized".
		trailer := "\n"
		if action == domain.MenuInvalid {
			trailer = "\n\n"
		}
		if err := h.Output(ctx, h.Highlight(action.Variant()+" ")+"pattern recognized"+trailer); err != nil {
			return fmt.Errorf("output error: %w", err)
		}

		switch {
		case action == domain.MenuQuit:
			r.Logger.Debug("Quit Selected")
			return nil
		case action.HasLesson():
			if err := r.present(ctx, action); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) resolve(line string) domain.MenuAction {
	clean, err := SanitizeInput(strings.TrimSpace(line))
	if err != nil {
		r.Logger.Warn("Input Rejected", "error", err)
		return domain.MenuInvalid
	}
	return r.tour.Resolve(clean)
}

// present pages through the lesson for action, gating after every page.
// A missing lesson is logged and the menu is shown again.
func (r *Runner) present(ctx context.Context, action domain.MenuAction) error {
	lesson, err := r.tour.Lesson(action)
	if err != nil {
		if errors.Is(err, domain.ErrLessonNotFound) {
			r.Logger.Warn("Lesson Missing", "action", action.String())
			return nil
		}
		return fmt.Errorf("lesson error: %w", err)
	}

	r.Logger.Debug("Lesson Start", "lesson", lesson.Title, "pages", len(lesson.Pages))
	for i, page := range lesson.Pages {
		if err := r.Handler.Render(ctx, page.Body); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
		r.Metrics.RecordPage(action)
		r.Logger.Debug("Page Shown", "lesson", lesson.Title, "page", i+1)

		if err := r.advance(ctx); err != nil {
			return err
		}
	}
	return nil
}

// advance is the pagination gate: GateReads raw bytes, then a fresh screen.
func (r *Runner) advance(ctx context.Context) error {
	for i := 0; i < GateReads; i++ {
		if _, err := r.Handler.ReadKey(ctx); err != nil {
			return fmt.Errorf("input failed: %w", err)
		}
	}
	if err := r.Handler.Clear(); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

// MenuText renders the title, one bracketed entry per action in priority
// order, and the prompt.
func MenuText() string {
	var sb strings.Builder
	sb.WriteString(Title)
	sb.WriteString("\n")
	for _, a := range domain.MenuOrder {
		sb.WriteString("    [")
		sb.WriteString(a.String())
		sb.WriteString("]\n")
	}
	sb.WriteString(Prompt)
	return sb.String()
}
