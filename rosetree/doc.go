// Package rosetree implements a generic, immutable-update rose tree: an
// N-ary tree whose nodes carry an optional value, an insertion-ordered
// sequence of child trees, and an open-ended metadata mapping.
//
// Trees are values. Every edit (InsertChild, RemoveChild, WithMeta, …)
// returns a new tree and leaves the receiver untouched; navigation is
// strictly top-down — a node never knows its parent.
//
// Key features:
//   - New(item): polymorphic construction from a scalar (Of) or a nested
//     sequence (SeqOf); nested sequences become subtrees, scalars become
//     leaf children
//   - Values(): structural flattening that preserves one level of subtree
//     grouping — the exact inverse of the construction encoding
//   - Flatten / All / Count / Reduce / Contains: the fully-unnested value
//     sequence, eagerly, lazily (iter.Seq), counted, folded, or probed
//   - Leaves / LeafValues: depth-first left-to-right frontier
//   - InsertChild / InsertValue, RemoveChild / RemoveValue: append-only
//     child insertion and first-match removal, by structural equality or
//     by bare value — two named operations, never runtime type inspection
//   - Walk(t, opts...): depth-first traversal with pre-/post-order hooks,
//     depth limits, child filtering, and context cancellation
//   - String(): treeprint-rendered sketch of the tree shape
//
// Definitions:
//   - the canonical EMPTY tree has an absent value and no children (the
//     zero value of Tree is exactly this);
//   - a LEAF is any node with zero children, value present or not.
//
// Complexity: predicates and single-child edits are O(children); the
// traversal family is O(nodes). Nothing in this package performs I/O,
// locks, or shares mutable state.
//
// Errors: all structural operations are total — removing an absent child
// is a no-op, flattening an empty tree yields an empty sequence. Only Walk
// can fail, and only by propagating a hook error or context cancellation.
package rosetree
