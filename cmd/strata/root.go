package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd is the bare `strata` invocation; all behavior lives in subcommands.
var rootCmd = &cobra.Command{
	Use:   "strata",
	Short: "classic data structures & algorithms from the shell",
	Long: `strata exposes the strata library's function-call surface as a CLI:
list sorting (quicksort/mergesort), binary search with the library's
documented probe sequence, and rose-tree construction & inspection.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
