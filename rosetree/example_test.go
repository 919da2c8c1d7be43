package rosetree_test

import (
	"fmt"

	"github.com/katalvlaran/strata/rosetree"
)

// ExampleNew builds the tree [1 [2 3 [4 5] 6] 7] and flattens it.
func ExampleNew() {
	tr := rosetree.New[int](rosetree.SeqOf[int](
		rosetree.Of(1),
		rosetree.SeqOf[int](
			rosetree.Of(2),
			rosetree.Of(3),
			rosetree.SeqOf[int](rosetree.Of(4), rosetree.Of(5)),
			rosetree.Of(6),
		),
		rosetree.Of(7),
	))

	fmt.Println(tr.Flatten())
	fmt.Println(tr.Count(), tr.Contains(5), tr.Contains(9))
	// Output:
	// [1 2 3 4 5 6 7]
	// 7 true false
}

// ExampleTree_InsertValue grows and prunes a tree; every step is a new
// value, so the original survives untouched.
func ExampleTree_InsertValue() {
	base := rosetree.New[string](rosetree.Of("root"))
	grown := base.InsertValue("a").InsertValue("b")
	pruned := grown.RemoveValue("a")

	fmt.Println(base.Len(), grown.Len(), pruned.Len())
	fmt.Println(grown.LeafValues())
	// Output:
	// 0 2 1
	// [a b]
}

// ExampleReduce folds the flattened value sequence left to right.
func ExampleReduce() {
	tr := rosetree.New[int](rosetree.SeqOf[int](
		rosetree.Of(10),
		rosetree.SeqOf[int](rosetree.Of(20), rosetree.Of(30)),
	))

	sum := rosetree.Reduce(tr, 0, func(acc, v int) int { return acc + v })
	fmt.Println(sum)
	// Output: 60
}
