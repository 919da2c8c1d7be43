// Package queue implements a persistent FIFO queue over an immutable
// singly-linked sequence, front = next element out.
//
// A Queue is a value: Enqueue and Dequeue return new queues, and every
// prior version remains fully usable.
//
// Key features:
//   - Peek / PeekOr: O(1) look at the front without consuming it
//   - Dequeue / DequeueOr: O(1), returns the front together with the rest
//   - Enqueue(v): O(n) — the whole chain is rebuilt to attach v at the back
//
// The O(1) peek/dequeue versus O(n) enqueue asymmetry is a deliberate
// consequence of the singly-linked representation and is part of this
// package's documented contract: a reimplementation on a double-ended
// structure could equalize the costs, but would no longer be this queue.
//
// Errors: none. Operations on the empty queue return the zero value (or
// the supplied default) and the empty queue itself.
package queue
