package rosetree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the tree shape with box-drawing branches, one node per
// line. Value-bearing nodes print their value; absent values print "·";
// nodes carrying metadata are annotated with the entry count.
func (t Tree[V]) String() string {
	root := treeprint.NewWithRoot(t.label())
	for _, c := range t.children {
		c.sketch(root)
	}

	return root.String()
}

// sketch appends this node (and, recursively, its subtree) to branch.
func (t Tree[V]) sketch(branch treeprint.Tree) {
	if t.IsLeaf() {
		branch.AddNode(t.label())
		return
	}

	sub := branch.AddBranch(t.label())
	for _, c := range t.children {
		c.sketch(sub)
	}
}

// label formats a single node for rendering.
func (t Tree[V]) label() string {
	out := "·"
	if t.hasValue {
		out = fmt.Sprint(t.value)
	}
	if len(t.meta) > 0 {
		out += fmt.Sprintf(" (meta ×%d)", len(t.meta))
	}

	return out
}
