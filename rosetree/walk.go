package rosetree

import "fmt"

// treeWalker encapsulates state during depth-first traversal.
type treeWalker[V comparable] struct {
	opts WalkOptions[V] // traversal options
	res  *WalkResult[V] // result collector
}

// Walk performs a depth-first, children-in-order traversal of t, honoring
// the installed options: context cancellation, pre-/post-order hooks, a
// depth limit, and child filtering. With no options it visits every node
// and its Order equals t.Flatten().
//
// Returns the WalkResult, or an error when a hook aborts or the context is
// cancelled. Time: O(nodes), memory: O(depth) for the recursion.
func Walk[V comparable](t Tree[V], opts ...Option[V]) (*WalkResult[V], error) {
	// 1. Apply options over the defaults.
	wopts := DefaultOptions[V]()
	var fn Option[V]
	for _, fn = range opts {
		fn(&wopts)
	}

	// 2. Initialize the result collector.
	res := &WalkResult[V]{
		Order: make([]V, 0, t.Count()),
	}

	walker := &treeWalker[V]{opts: wopts, res: res}

	// 3. Traverse from the root.
	if err := walker.traverse(t, 0); err != nil {
		return res, err
	}

	// 4. Expose diagnostics.
	res.SkippedChildren = walker.opts.SkippedChildren

	return res, nil
}

// traverse visits node at the given depth, recursing into its children.
// It honors context cancellation, the depth limit, hooks, and filtering.
func (w *treeWalker[V]) traverse(node Tree[V], depth int) error {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop silently when exceeded.
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Record the visit.
	w.res.Nodes++
	if depth > w.res.MaxDepth {
		w.res.MaxDepth = depth
	}
	if node.IsLeaf() {
		w.res.Leaves++
	}

	// 4. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(node, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("rosetree: OnVisit hook at depth %d: %w", depth, err)
		}
	}

	// 5. Collect the node's value in pre-order.
	if node.hasValue {
		w.res.Order = append(w.res.Order, node.value)
	}

	// 6. Explore each child in insertion order.
	var child Tree[V]
	var err error
	for _, child = range node.children {
		if w.opts.FilterChild != nil && !w.opts.FilterChild(child) {
			w.opts.SkippedChildren++
			continue
		}
		if err = w.traverse(child, depth+1); err != nil {
			return err
		}
	}

	// 7. Post-order hook.
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(node, depth); err != nil {
			w.res.Order = nil

			return fmt.Errorf("rosetree: OnExit hook at depth %d: %w", depth, err)
		}
	}

	return nil
}
