package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/ferris"
	"github.com/aretw0/ferris/pkg/observability"
	"github.com/aretw0/ferris/pkg/runner"
)

// RunSession executes a single interactive session of the tour.
// It returns nil when the user quits.
func RunSession(ctx context.Context, opts RunOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	logger := createLogger(opts.Debug)

	tour, err := ferris.New(ferris.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("error initializing tour: %w", err)
	}

	metrics := observability.NewMetrics()

	r := runner.NewRunner(tour, createRunnerOptions(opts, logger, metrics)...)

	logger.Info("Session Started", "version", ferris.Version, "plain", opts.Plain)
	runErr := r.Run(ctx)

	logCompletion(logger, metrics, runErr)

	return runErr
}
