package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ferris"
	"github.com/aretw0/ferris/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the tour map visualization",
	Long:  `Outputs a Mermaid diagram (graph TD) of the menu, every lesson page and the pagination gates between them.`,
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

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(lessons))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
