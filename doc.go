/*
Package ferris is an interactive terminal tour of Rust's strengths, told through annotated code examples.

The tour shows a menu, resolves whatever the user types to one of a fixed set of menu actions,
and pages through static lessons (ownership, structs, enums, reliability) until the user quits.

# Menu Resolution

Input is matched against the canonical label of each action (ownership, structs, enums,
reliability, quit) in that priority order. An input is accepted when it equals, ignoring case,
any contiguous run of characters taken from a label. "own", "OWNERSHIP" and even "o" all
select Ownership; "u" selects Structs because structs comes before enums and quit.

# Usage

	tour, err := ferris.New()
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(tour, runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)))
	if err := r.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
*/
package ferris
