package cli

import (
	"log/slog"
	"os"

	"github.com/aretw0/ferris"
	"github.com/aretw0/ferris/internal/logging"
	"github.com/aretw0/ferris/internal/presentation/tui"
	"github.com/aretw0/ferris/pkg/observability"
	"github.com/aretw0/ferris/pkg/runner"
	"github.com/muesli/termenv"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the Stdout screen).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// createRunnerOptions prepares the functional options for the Runner.
// Rich output (banner, colour, glamour) is only used on a real terminal.
func createRunnerOptions(opts RunOptions, logger *slog.Logger, metrics *observability.Metrics) []runner.Option {
	profile := termenv.Ascii
	renderer := tui.NewPlainRenderer()

	if f, ok := opts.Out.(*os.File); ok && !opts.Plain && tui.IsTerminal(f) {
		profile = termenv.EnvColorProfile()
		renderer = tui.NewRenderer(tui.TerminalWidth(f))
	}

	handler := runner.NewTextHandler(opts.In, opts.Out,
		runner.WithTextHandlerProfile(profile),
		runner.WithTextHandlerRenderer(renderer),
	)

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithMetrics(metrics),
		runner.WithInputHandler(handler),
	}

	if !opts.Plain {
		runnerOpts = append(runnerOpts, runner.WithHeader(tui.Banner(profile, ferris.Version)))
	}

	return runnerOpts
}

func logCompletion(logger *slog.Logger, metrics *observability.Metrics, err error) {
	if err != nil {
		logger.Error("Session Aborted", "error", err)
	} else {
		logger.Info("Session Finished")
	}
	logger.Debug("Session Metrics", metrics.LogAttrs()...)
}
