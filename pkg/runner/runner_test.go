package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/ferris"
	"github.com/aretw0/ferris/pkg/adapters/memory"
	"github.com/aretw0/ferris/pkg/domain"
	"github.com/aretw0/ferris/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clearSeq = "\x1b[2J"

func newTestRunner(t *testing.T, input string) (*Runner, *bytes.Buffer) {
	t.Helper()

	loader, err := memory.NewFromLessons(domain.Lesson{
		Action: domain.MenuOwnership,
		Title:  "Ownership",
		Pages: []domain.Page{
			{Body: "page one: let s2 = s1;"},
			{Body: "page two: &s"},
		},
	})
	require.NoError(t, err)

	tour, err := ferris.New(ferris.WithLoader(loader))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	r := NewRunner(tour,
		WithInputHandler(newTestHandler(input, out)),
		WithMetrics(observability.NewMetrics()),
	)
	return r, out
}

func TestRunner_QuitImmediately(t *testing.T) {
	r, out := newTestRunner(t, "quit\n")

	require.NoError(t, r.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, MenuText())
	assert.Contains(t, output, "    [Ownership]\n    [Structs]\n    [Enums]\n    [Reliability]\n    [Quit]\n")
	assert.Contains(t, output, "Menu::Quit pattern recognized\n\n")
	assert.Equal(t, 1, strings.Count(output, clearSeq))
}

func TestRunner_LessonWithGates(t *testing.T) {
	// own -> page one -> gate ("x\n") -> page two -> gate ("y\n") -> menu -> quit
	r, out := newTestRunner(t, "own\nx\ny\nQ\n")

	require.NoError(t, r.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Menu::Ownership pattern recognized\n\n")
	one := strings.Index(output, "page one")
	two := strings.Index(output, "page two")
	require.NotEqual(t, -1, one)
	require.NotEqual(t, -1, two)
	assert.Less(t, one, two)
	assert.Contains(t, output[one:two], clearSeq, "gate must clear between pages")

	// menu, gate 1, gate 2, menu again
	assert.Equal(t, 4, strings.Count(output, clearSeq))

	snap, err := r.Metrics.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 2.0, snap[`ferris_pages_shown_total{lesson="Ownership"}`])
	assert.Equal(t, 1.0, snap[`ferris_menu_selections_total{action="Ownership"}`])
	assert.Equal(t, 1.0, snap[`ferris_menu_selections_total{action="Quit"}`])
}

func TestRunner_InvalidRedrawsMenu(t *testing.T) {
	r, out := newTestRunner(t, "xyz123\n\n   \nquit\n")

	require.NoError(t, r.Run(context.Background()))

	output := out.String()
	assert.Equal(t, 3, strings.Count(output, "Menu::Invalid pattern recognized\n\n\n"))
	assert.Equal(t, 4, strings.Count(output, Prompt))

	pages, err := testutil.GatherAndCount(r.Metrics.Registry(), "ferris_pages_shown_total")
	require.NoError(t, err)
	assert.Zero(t, pages, "no pages shown")
}

func TestRunner_MissingLessonReturnsToMenu(t *testing.T) {
	// Only Ownership has content; "structs" must not consume gate input.
	r, out := newTestRunner(t, "structs\nquit\n")

	require.NoError(t, r.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "Menu::Structs pattern recognized")
	assert.Contains(t, output, "Menu::Quit pattern recognized")
}

func TestRunner_Header(t *testing.T) {
	r, out := newTestRunner(t, "nope\nquit\n")
	WithHeader("== banner ==")(r)

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 2, strings.Count(out.String(), "== banner ==\n"+Title))
}

func TestRunner_FinalLineWithoutNewline(t *testing.T) {
	r, _ := newTestRunner(t, "quit")
	assert.NoError(t, r.Run(context.Background()))
}

func TestRunner_EndOfInputIsFatal(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"At Menu", ""},
		{"After Invalid", "nope\n"},
		{"Inside Gate", "own\nx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRunner(t, tt.input)

			err := r.Run(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInputClosed)
			assert.Contains(t, err.Error(), "input failed")
		})
	}
}

func TestRunner_InputLimitIgnoresSurroundingWhitespace(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "16")

	tests := []struct {
		name    string
		input   string
		invalid bool
	}{
		{"Exact Label", "ownership\n.\n.\nquit\n", false},
		{"Padded Label", "   quit" + strings.Repeat(" ", 64) + "\n", false},
		{"Long Word", strings.Repeat("ownership", 3) + "\nquit\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRunner(t, tt.input)

			require.NoError(t, r.Run(context.Background()))

			output := out.String()
			assert.Contains(t, output, "Menu::Quit pattern recognized")
			if tt.invalid {
				assert.Contains(t, output, "Menu::Invalid pattern recognized")
			} else {
				assert.NotContains(t, output, "Menu::Invalid")
			}
		})
	}
}

func TestRunner_CancelledContext(t *testing.T) {
	r, out := newTestRunner(t, "quit\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestMenuText(t *testing.T) {
	want := Title + "\n" +
		"    [Ownership]\n" +
		"    [Structs]\n" +
		"    [Enums]\n" +
		"    [Reliability]\n" +
		"    [Quit]\n" +
		Prompt
	assert.Equal(t, want, MenuText())
}
