package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/ferris"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ferris",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ferris version %s\n", strings.TrimSpace(ferris.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
