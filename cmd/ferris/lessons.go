package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ferris"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the lessons shipped with the tour",
	Run: func(cmd *cobra.Command, args []string) {
		tour, err := ferris.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing tour: %v\n", err)
			os.Exit(1)
		}

		lessons, err := tour.Lessons()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing lessons: %v\n", err)
			os.Exit(1)
		}

		out := cmd.OutOrStdout()
		for _, l := range lessons {
			fmt.Fprintf(out, "%-12s %-12s %d pages  %s\n", l.Action.Label(), l.Title, len(l.Pages), l.Summary)
		}
	},
}

func init() {
	rootCmd.AddCommand(lessonsCmd)
}
