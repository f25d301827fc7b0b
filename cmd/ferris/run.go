package main

import (
	"fmt"
	"os"

	"github.com/aretw0/ferris/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive tour",
	Long:  `Shows the menu and pages through lessons until Quit is selected.`,
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.RunOptions{
			Plain: plain,
			Debug: debug,
			In:    cmd.InOrStdin(),
			Out:   cmd.OutOrStdout(),
		}

		if err := cli.RunSession(cmd.Context(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("plain", false, "Disable banner, colours and markdown rendering")

	// 'run' is the default when no command is provided
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.Run = runCmd.Run
}
