package runner

import "context"

// IOHandler defines the strategy for interacting with the user.
// Every call blocks until it completes; handlers are not used concurrently.
type IOHandler interface {
	// Clear wipes the screen and moves the cursor to the top-left corner.
	Clear() error

	// Output writes text followed by a newline, without rendering.
	Output(ctx context.Context, text string) error

	// Render presents markdown lesson content.
	Render(ctx context.Context, markdown string) error

	// Highlight decorates a short string (e.g. a menu variant) for emphasis.
	Highlight(s string) string

	// Input reads one line from the user, without the trailing newline.
	Input(ctx context.Context) (string, error)

	// ReadKey reads a single raw byte from the same source as Input.
	ReadKey(ctx context.Context) (byte, error)
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the runner package.
type ContentRenderer func(string) (string, error)
