package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/ferris/pkg/domain"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <input>...",
	Short: "Show which menu entry an input selects",
	Long: `Resolves each argument exactly as the interactive menu would and prints
the resulting variant. Useful for exploring the fuzzy matching rules.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, input := range args {
			fmt.Fprintf(out, "%q -> %s\n", input, domain.Resolve(input).Variant())
		}
	},
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "List the canonical menu labels in priority order",
	Run: func(cmd *cobra.Command, args []string) {
		labels := make([]string, 0, len(domain.MenuOrder))
		for _, a := range domain.MenuOrder {
			labels = append(labels, a.Label())
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(labels, " > "))
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(labelsCmd)
}
