package rosetree

import "iter"

// Values flattens the tree into a sequence that preserves one level of
// subtree grouping — the exact inverse of the construction encoding:
//
//   - the empty tree flattens to an empty Seq;
//   - a value-only leaf flattens to a single-element Seq holding its value;
//   - otherwise the result is the node's value (when present) followed by
//     one item per child — a bare Val for a value-only leaf child, a nested
//     Seq for any other child.
//
// Time: O(nodes).
func (t Tree[V]) Values() Seq[V] {
	out := make(Seq[V], 0, len(t.children)+1)
	if t.hasValue {
		out = append(out, Val[V]{Value: t.value})
	}
	var c Tree[V]
	for _, c = range t.children {
		if c.IsLeaf() && c.hasValue {
			out = append(out, Val[V]{Value: c.value}) // leaf child → bare scalar
		} else {
			out = append(out, c.Values()) // subtree child → nested sequence
		}
	}

	return out
}

// Flatten returns every value in the tree, fully unnested, in depth-first
// pre-order (node value before its children's). Valueless nodes contribute
// nothing. Time: O(nodes).
func (t Tree[V]) Flatten() []V {
	out := make([]V, 0, t.Count())
	for v := range t.All() {
		out = append(out, v)
	}

	return out
}

// All returns a lazy, finite, restartable iterator over the same
// fully-unnested value sequence Flatten materializes. Each range over the
// result starts a fresh traversal; no cursor state is retained.
func (t Tree[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.emit(yield)
	}
}

// emit walks the tree pre-order, feeding values to yield until it declines.
func (t Tree[V]) emit(yield func(V) bool) bool {
	if t.hasValue && !yield(t.value) {
		return false
	}
	for _, c := range t.children {
		if !c.emit(yield) {
			return false
		}
	}

	return true
}

// Count returns the number of values in the tree — the length of the
// fully-unnested sequence. The empty tree counts 0; valueless interior
// nodes are not counted. Time: O(nodes).
func (t Tree[V]) Count() int {
	n := 0
	if t.hasValue {
		n = 1
	}
	for _, c := range t.children {
		n += c.Count()
	}

	return n
}

// Contains reports whether target occurs anywhere in the tree. The search
// is depth-first with children in insertion order, and short-circuits on
// the first match. Time: O(nodes) worst case.
func (t Tree[V]) Contains(target V) bool {
	if t.hasValue && t.value == target {
		return true
	}
	for _, c := range t.children {
		if c.Contains(target) {
			return true
		}
	}

	return false
}

// Reduce folds combine over the tree's fully-unnested value sequence, left
// to right, starting from initial. Time: O(nodes).
func Reduce[V comparable, A any](t Tree[V], initial A, combine func(acc A, v V) A) A {
	acc := initial
	for v := range t.All() {
		acc = combine(acc, v)
	}

	return acc
}

// Leaves returns every descendant with zero children — possibly including
// the tree itself — in depth-first left-to-right order. Time: O(nodes).
func (t Tree[V]) Leaves() []Tree[V] {
	if t.IsLeaf() {
		return []Tree[V]{t}
	}

	var out []Tree[V]
	for _, c := range t.children {
		out = append(out, c.Leaves()...)
	}

	return out
}

// LeafValues maps Leaves to their value fields, preserving order and
// skipping leaves with an absent value. Time: O(nodes).
func (t Tree[V]) LeafValues() []V {
	leaves := t.Leaves()
	out := make([]V, 0, len(leaves))
	for _, leaf := range leaves {
		if leaf.hasValue {
			out = append(out, leaf.value)
		}
	}

	return out
}
