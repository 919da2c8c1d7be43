package rosetree

import "reflect"

// Tree is an immutable-update rose tree node: an optional value, an
// insertion-ordered sequence of child trees, and an open-ended metadata
// mapping. The zero value is the canonical empty tree. Trees are plain
// values — copy, store, and compare them freely; no operation mutates a
// tree in place.
type Tree[V comparable] struct {
	value    V
	hasValue bool
	children []Tree[V]
	meta     map[string]any
}

// New constructs a tree from a polymorphic item.
//
//   - Of(v) yields a childless leaf holding v.
//   - SeqOf() yields the canonical empty tree.
//   - A non-empty Seq whose first element is a scalar uses it as the node
//     value; every remaining element is passed through New again, so nested
//     sequences become subtrees and scalars become leaf children.
//   - A non-empty Seq whose first element is itself a Seq yields a node
//     with an absent value whose children are ALL the elements; this keeps
//     New and Values exact inverses of each other.
func New[V comparable](item Item[V]) Tree[V] {
	switch it := item.(type) {
	case Val[V]:
		return Tree[V]{value: it.Value, hasValue: true}

	case Seq[V]:
		if len(it) == 0 {
			return Tree[V]{}
		}

		var t Tree[V]
		rest := []Item[V](it)
		if head, ok := it[0].(Val[V]); ok {
			t.value = head.Value
			t.hasValue = true
			rest = rest[1:]
		}
		if len(rest) > 0 {
			t.children = make([]Tree[V], len(rest))
			for i, sub := range rest {
				t.children[i] = New[V](sub)
			}
		}

		return t

	default:
		// The Item interface is sealed; no third case can exist.
		return Tree[V]{}
	}
}

// IsEmpty reports whether the tree is the canonical empty tree: absent
// value AND no children. A valueless node that has children is not empty.
func (t Tree[V]) IsEmpty() bool {
	return !t.hasValue && len(t.children) == 0
}

// IsLeaf reports whether the tree has zero children, irrespective of
// value presence.
func (t Tree[V]) IsLeaf() bool {
	return len(t.children) == 0
}

// Value returns the node's value and whether one is present.
func (t Tree[V]) Value() (V, bool) {
	return t.value, t.hasValue
}

// Children returns a fresh slice of the direct child trees, in insertion
// order. Mutating the returned slice does not affect the tree.
func (t Tree[V]) Children() []Tree[V] {
	out := make([]Tree[V], len(t.children))
	copy(out, t.children)

	return out
}

// Len reports the number of direct children.
func (t Tree[V]) Len() int {
	return len(t.children)
}

// Meta returns the metadata stored under key and whether it exists.
func (t Tree[V]) Meta(key string) (any, bool) {
	v, ok := t.meta[key]

	return v, ok
}

// WithMeta returns a new tree whose metadata mapping additionally binds
// key to val. The receiver's mapping is copied, never shared for writing.
func (t Tree[V]) WithMeta(key string, val any) Tree[V] {
	meta := make(map[string]any, len(t.meta)+1)
	for k, v := range t.meta {
		meta[k] = v
	}
	meta[key] = val

	return Tree[V]{value: t.value, hasValue: t.hasValue, children: t.children, meta: meta}
}

// Equal reports full structural equality: value presence and value,
// metadata, and every child, recursively, must all match. This is the
// equality RemoveChild uses to locate its victim.
func (t Tree[V]) Equal(other Tree[V]) bool {
	// 1. Value presence and the value itself.
	if t.hasValue != other.hasValue {
		return false
	}
	if t.hasValue && t.value != other.value {
		return false
	}

	// 2. Metadata: open-ended heterogeneous values, so deep comparison.
	if len(t.meta) != len(other.meta) {
		return false
	}
	if len(t.meta) > 0 && !reflect.DeepEqual(t.meta, other.meta) {
		return false
	}

	// 3. Children, pairwise and in order.
	if len(t.children) != len(other.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(other.children[i]) {
			return false
		}
	}

	return true
}
