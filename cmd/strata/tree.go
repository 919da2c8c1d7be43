package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/strata/rosetree"
)

// treeCmd builds a rose tree from a bracketed nested expression and
// inspects it: rendered shape, flattened values, and leaves.
var treeCmd = &cobra.Command{
	Use:   "tree [expression]",
	Short: "build and inspect a rose tree from a nested expression",
	Long: `strata tree "[1 [2 3 [4 5] 6] 7]"

The first element of a bracketed group becomes the node value; remaining
elements become children — nested groups become subtrees, bare atoms become
leaf children.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		item, err := parseTreeExpr(strings.Join(args, " "))
		if err != nil {
			logrus.Error(err)
			os.Exit(1)
		}

		tr := rosetree.New[string](item)
		fmt.Print(tr.String())
		fmt.Println("values:", tr.Flatten())
		fmt.Println("leaves:", tr.LeafValues())
		fmt.Println("count: ", tr.Count())
	},
}

// parseTreeExpr parses a whitespace-separated, bracket-nested expression
// into a construction item. Atoms stay strings.
func parseTreeExpr(input string) (rosetree.Item[string], error) {
	toks := tokenize(input)
	if len(toks) == 0 {
		return rosetree.SeqOf[string](), nil
	}

	item, rest, err := parseItem(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("unexpected trailing tokens: %v", rest)
	}

	return item, nil
}

// tokenize splits input into atoms and the bracket tokens "[" and "]".
func tokenize(input string) []string {
	spaced := strings.NewReplacer("[", " [ ", "]", " ] ").Replace(input)

	return strings.Fields(spaced)
}

// parseItem consumes one item — an atom or a bracketed group — from toks
// and returns it with the remaining tokens.
func parseItem(toks []string) (rosetree.Item[string], []string, error) {
	switch toks[0] {
	case "[":
		items := rosetree.SeqOf[string]()
		rest := toks[1:]
		for {
			if len(rest) == 0 {
				return nil, nil, fmt.Errorf("missing closing bracket")
			}
			if rest[0] == "]" {
				return items, rest[1:], nil
			}
			sub, tail, err := parseItem(rest)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, sub)
			rest = tail
		}

	case "]":
		return nil, nil, fmt.Errorf("unexpected closing bracket")

	default:
		return rosetree.Of(toks[0]), toks[1:], nil
	}
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
