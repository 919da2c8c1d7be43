package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/strata/listsort"
)

var sortAlgo string

// sortCmd sorts integer arguments with the chosen algorithm.
var sortCmd = &cobra.Command{
	Use:   "sort [values...]",
	Short: "sort integers with quicksort or mergesort",
	Long: `strata sort 3 1 2
strata sort --algo merge 9 -9 -9 9 9 -9`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		values, err := parseInts(args)
		if err != nil {
			logrus.Error(err)
			os.Exit(1)
		}

		switch sortAlgo {
		case "quick":
			fmt.Println(listsort.Quicksort(values))
		case "merge":
			fmt.Println(listsort.Mergesort(values))
		default:
			logrus.Errorf("unknown algorithm %q (want quick or merge)", sortAlgo)
			os.Exit(1)
		}
	},
}

// parseInts converts CLI arguments to a slice of ints.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not an integer: %w", a, err)
		}
		out[i] = v
	}

	return out, nil
}

func init() {
	rootCmd.AddCommand(sortCmd)
	sortCmd.Flags().StringVarP(&sortAlgo, "algo", "a", "quick", "sorting algorithm: quick or merge")
}
