/*
Package runner implements the interactive menu loop for the ferris tour.

It acts as the bridge between the tour (menu resolution and lessons) and the terminal.
Each iteration clears the screen, prints the menu, reads one line, resolves it and either
quits, redraws the menu, or pages through a lesson. Between pages a pagination gate waits
for two raw bytes of input before clearing the screen.

Everything is synchronous: a blocked read blocks the whole session.

# Key Components

  - Runner: The loop itself, configured with functional options.
  - IOHandler: Decouples how the runner talks to the user, so tests can inject input.
  - TextHandler: The standard implementation over an io.Reader / io.Writer pair.

# Usage

	tour, _ := ferris.New()
	r := runner.NewRunner(tour,
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
