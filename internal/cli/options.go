package cli

import "io"

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	// Plain disables the banner, markdown rendering and colour.
	Plain bool
	// Debug enables logs on Stderr and the metrics summary.
	Debug bool

	// In and Out default to Stdin and Stdout.
	In  io.Reader
	Out io.Writer
}
