package rosetree_test

import (
	"testing"

	"github.com/katalvlaran/strata/rosetree"
)

// buildWideTree constructs a root with n leaf children 0..n-1.
func buildWideTree(n int) rosetree.Tree[int] {
	tr := rosetree.New[int](rosetree.Of(-1))
	for i := 0; i < n; i++ {
		tr = tr.InsertValue(i)
	}

	return tr
}

// buildDeepTree constructs a unary chain of depth n.
func buildDeepTree(n int) rosetree.Tree[int] {
	tr := rosetree.New[int](rosetree.Of(n))
	for i := n - 1; i >= 0; i-- {
		tr = rosetree.New[int](rosetree.Of(i)).InsertChild(tr)
	}

	return tr
}

// BenchmarkFlatten_Wide1000 measures flattening a 1000-leaf bush.
// Each Flatten is O(nodes); the tree is built once outside the timer.
func BenchmarkFlatten_Wide1000(b *testing.B) {
	tr := buildWideTree(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Flatten()
	}
}

// BenchmarkContains_DeepMiss measures a full-depth miss on a chain of 1000
// nodes: the worst case for the short-circuiting search.
func BenchmarkContains_DeepMiss(b *testing.B) {
	tr := buildDeepTree(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Contains(-42)
	}
}

// BenchmarkInsertChild_Wide measures append cost as the child slice is
// copied on every edit (persistent update, O(children)).
func BenchmarkInsertChild_Wide(b *testing.B) {
	tr := buildWideTree(256)
	leaf := rosetree.New[int](rosetree.Of(7))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.InsertChild(leaf)
	}
}
