package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/strata/bisect"
)

var searchTarget int

// searchCmd looks a target up in an ascending-sorted list of integers.
var searchCmd = &cobra.Command{
	Use:   "search [sorted values...]",
	Short: "binary-search a sorted list with the documented probe sequence",
	Long: `strata search --target 3 1 2 3 4 5 6

Prints the zero-based index of the target, or -1 when absent. The input
must already be sorted ascending; the probe sequence is the library's
non-standard one, preserved for compatibility.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		values, err := parseInts(args)
		if err != nil {
			logrus.Error(err)
			os.Exit(1)
		}

		fmt.Println(bisect.Search(values, searchTarget))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchTarget, "target", "t", 0, "value to locate")
	_ = searchCmd.MarkFlagRequired("target")
}
