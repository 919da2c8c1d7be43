// Package stack implements a persistent LIFO stack over an immutable
// singly-linked sequence, front = top.
//
// A Stack is a value: Push and Pop return new stacks that share structure
// with the old one, and the old stack remains fully usable. There is no
// mutation anywhere, so stacks may be freely copied, stored, and compared
// by traversal.
//
// Key features:
//   - Push(v): O(1), shares the entire previous chain as its tail
//   - Top / TopOr: O(1) peek, with an optional caller-supplied default
//     for the empty stack
//   - Pop / PopOr: O(1), returns the top together with the remainder
//   - Slice: O(n) snapshot, top first
//
// Complexity: every operation except Slice is O(1) time and O(1) memory.
//
// Errors: none. Operations on the empty stack return the zero value (or
// the supplied default) and the empty stack itself — absence of an effect,
// not a failure.
package stack
