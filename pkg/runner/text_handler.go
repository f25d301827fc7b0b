package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/ferris/pkg/domain"
	"github.com/muesli/termenv"
)

// TextHandler implements the standard text-based interface.
// Line reads and raw key reads share one buffered reader, so bytes typed
// ahead of a pagination gate are never lost.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	term *termenv.Output
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerProfile forces a colour profile instead of detecting one
// from the writer. termenv.Ascii disables colour.
func WithTextHandlerProfile(p termenv.Profile) TextHandlerOption {
	return func(h *TextHandler) {
		h.term = termenv.NewOutput(h.Writer, termenv.WithProfile(p))
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.term == nil {
		h.term = termenv.NewOutput(w)
	}

	return h
}

// Clear erases the display and homes the cursor.
func (h *TextHandler) Clear() error {
	h.term.ClearScreen()
	return nil
}

// Output writes text followed by a newline.
func (h *TextHandler) Output(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(h.Writer, text)
	return err
}

// Render writes markdown through the renderer, or raw when rendering fails.
func (h *TextHandler) Render(ctx context.Context, markdown string) error {
	output := markdown
	if h.Renderer != nil {
		rendered, err := h.Renderer(markdown)
		if err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimRight(output, "\n"))
	return err
}

// Highlight paints s cyan, or returns it unchanged when colour is unavailable.
func (h *TextHandler) Highlight(s string) string {
	return h.term.String(s).Foreground(h.term.Color("6")).String()
}

// Input reads a line. A final line without a newline is still returned;
// a bare end of stream is domain.ErrInputClosed.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if text != "" {
				return strings.TrimRight(text, "\r\n"), nil
			}
			return "", domain.ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(text, "\r\n"), nil
}

// ReadKey reads one raw byte from the shared input buffer.
func (h *TextHandler) ReadKey(ctx context.Context) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	b, err := h.Reader.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, domain.ErrInputClosed
		}
		return 0, err
	}
	return b, nil
}
