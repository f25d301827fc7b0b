package ferris_test

import (
	"fmt"
	"log"

	"github.com/aretw0/ferris"
)

// ExampleTour_Resolve shows how free-text menu input maps to menu actions.
func ExampleTour_Resolve() {
	tour, err := ferris.New()
	if err != nil {
		log.Fatal(err)
	}

	for _, input := range []string{"OWNERSHIP", "own", "u", "rel", "q", "", "xyz123"} {
		fmt.Printf("%q -> %s\n", input, tour.Resolve(input).Variant())
	}
	// Output:
	// "OWNERSHIP" -> Menu::Ownership
	// "own" -> Menu::Ownership
	// "u" -> Menu::Structs
	// "rel" -> Menu::Reliability
	// "q" -> Menu::Quit
	// "" -> Menu::Invalid
	// "xyz123" -> Menu::Invalid
}
