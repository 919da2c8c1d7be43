package rosetree

// InsertChild returns a new tree with child appended at the end of the
// children sequence, preserving the child's own value, children, and
// metadata. Insertion is append-only: the new child is always last.
// The receiver is unchanged. Time: O(children).
func (t Tree[V]) InsertChild(child Tree[V]) Tree[V] {
	kids := make([]Tree[V], len(t.children)+1)
	copy(kids, t.children)
	kids[len(t.children)] = child

	return Tree[V]{value: t.value, hasValue: t.hasValue, children: kids, meta: t.meta}
}

// InsertValue wraps v in a new childless leaf and appends it, exactly like
// InsertChild. Time: O(children).
func (t Tree[V]) InsertValue(v V) Tree[V] {
	return t.InsertChild(New[V](Of(v)))
}

// RemoveChild returns a new tree without the first direct child that is
// structurally equal to child (value, children, AND metadata must match —
// see Equal). When no such child exists the receiver is returned as-is:
// absence of an effect, not an error. Time: O(children × subtree size).
func (t Tree[V]) RemoveChild(child Tree[V]) Tree[V] {
	for i := range t.children {
		if t.children[i].Equal(child) {
			return t.withoutChild(i)
		}
	}

	return t
}

// RemoveValue returns a new tree without the first direct child whose value
// field equals v. Only direct children are considered — never a deep
// search. When no child matches, the receiver is returned as-is.
// Time: O(children).
func (t Tree[V]) RemoveValue(v V) Tree[V] {
	for i := range t.children {
		if t.children[i].hasValue && t.children[i].value == v {
			return t.withoutChild(i)
		}
	}

	return t
}

// withoutChild builds the successor tree with the child at index i excised.
func (t Tree[V]) withoutChild(i int) Tree[V] {
	kids := make([]Tree[V], 0, len(t.children)-1)
	kids = append(kids, t.children[:i]...)
	kids = append(kids, t.children[i+1:]...)

	return Tree[V]{value: t.value, hasValue: t.hasValue, children: kids, meta: t.meta}
}
