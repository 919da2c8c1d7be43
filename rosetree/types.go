// Package rosetree defines the construction sum type (scalar vs sequence),
// traversal options, and traversal results for the rose tree.
package rosetree

import "context"

// Item is the polymorphic construction input for New and the element type
// of a flattened sequence: either a bare scalar (Val) or a nested ordered
// sequence (Seq). The interface is sealed; no other implementations exist.
type Item[V comparable] interface {
	// item is a marker; it restricts implementations to this package.
	item()
}

// Val is a bare scalar item. As a constructor argument it yields a
// childless leaf; inside a flattened sequence it marks a value-only leaf.
type Val[V comparable] struct {
	Value V
}

func (Val[V]) item() {}

// Seq is an ordered sequence of items. As a constructor argument its first
// scalar element becomes the node value and the remaining elements become
// children; inside a flattened sequence it marks a subtree.
type Seq[V comparable] []Item[V]

func (Seq[V]) item() {}

// Of wraps a scalar into a Val item.
func Of[V comparable](v V) Val[V] {
	return Val[V]{Value: v}
}

// SeqOf collects items into a Seq item.
func SeqOf[V comparable](items ...Item[V]) Seq[V] {
	return Seq[V](items)
}

// Option configures optional behavior of Walk traversal.
// Use with Walk(t, opts...).
type Option[V comparable] func(*WalkOptions[V])

// WalkOptions holds configurable parameters for depth-first traversal.
// It controls hooks, limits, filtering, and diagnostics.
// Complexity remains O(nodes) when filters and hooks are O(1).
type WalkOptions[V comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts Walk early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked on a node before its children
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(node Tree[V], depth int) error

	// OnExit, if non-nil, is invoked after all of a node's children have
	// been explored (post-order). Returning an error aborts traversal.
	OnExit func(node Tree[V], depth int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterChild, if non-nil, is called for each child before descending.
	// Return true to traverse into that child, false to skip its subtree.
	FilterChild func(child Tree[V]) bool

	// SkippedChildren tracks how many child subtrees were skipped due to
	// FilterChild returning false. Useful for diagnostics.
	SkippedChildren int
}

// DefaultOptions returns a WalkOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No child filtering
func DefaultOptions[V comparable]() WalkOptions[V] {
	return WalkOptions[V]{
		Ctx:             context.Background(),
		OnVisit:         nil,
		OnExit:          nil,
		MaxDepth:        -1,
		FilterChild:     nil,
		SkippedChildren: 0,
	}
}

// WithContext returns an Option that sets the Context for traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *WalkOptions[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook runs when a node is reached, before its children.
func WithOnVisit[V comparable](fn func(node Tree[V], depth int) error) Option[V] {
	return func(o *WalkOptions[V]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook runs after a node's children have been fully explored.
func WithOnExit[V comparable](fn func(node Tree[V], depth int) error) Option[V] {
	return func(o *WalkOptions[V]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the root is visited.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *WalkOptions[V]) {
		o.MaxDepth = limit
	}
}

// WithFilterChild returns an Option that filters child subtrees.
// If fn(child) == false, that subtree is skipped and counted in
// SkippedChildren.
func WithFilterChild[V comparable](fn func(child Tree[V]) bool) Option[V] {
	return func(o *WalkOptions[V]) {
		o.FilterChild = fn
	}
}

// WalkResult captures the outcome of a depth-first traversal.
type WalkResult[V comparable] struct {
	// Order records the values of value-bearing nodes in pre-order.
	// With no limits or filters installed it equals Flatten().
	Order []V

	// Nodes counts every node visited, value-bearing or not.
	Nodes int

	// Leaves counts visited nodes that have no children.
	Leaves int

	// MaxDepth is the deepest level reached (root = 0).
	MaxDepth int

	// SkippedChildren mirrors how many subtrees FilterChild rejected.
	SkippedChildren int
}
