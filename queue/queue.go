package queue

// cell is one link of the immutable chain backing a Queue.
type cell[T any] struct {
	value T
	next  *cell[T]
}

// Queue is a persistent FIFO sequence; the zero value is the empty queue.
type Queue[T any] struct {
	head *cell[T]
	size int
}

// New builds a queue from items, with items[0] at the front (first out).
// Time: O(n).
func New[T any](items ...T) Queue[T] {
	var head *cell[T]
	for i := len(items) - 1; i >= 0; i-- { // link back-to-front
		head = &cell[T]{value: items[i], next: head}
	}

	return Queue[T]{head: head, size: len(items)}
}

// Enqueue returns a new queue with v attached at the back. The receiver is
// unchanged. Time: O(n) — every link is rebuilt so the new back can be
// appended without mutating the shared chain.
func (q Queue[T]) Enqueue(v T) Queue[T] {
	tail := &cell[T]{value: v}

	// 1. Empty queue: the new element is both front and back.
	if q.head == nil {
		return Queue[T]{head: tail, size: 1}
	}

	// 2. Rebuild the chain front-to-back, finishing with the new tail.
	newHead := &cell[T]{value: q.head.value}
	prev := newHead
	for c := q.head.next; c != nil; c = c.next {
		prev.next = &cell[T]{value: c.value}
		prev = prev.next
	}
	prev.next = tail

	return Queue[T]{head: newHead, size: q.size + 1}
}

// Peek returns the front element and true, or the zero value and false when
// the queue is empty. The queue is not consumed. Time: O(1).
func (q Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}

	return q.head.value, true
}

// PeekOr returns the front element, or def when the queue is empty. Time: O(1).
func (q Queue[T]) PeekOr(def T) T {
	if v, ok := q.Peek(); ok {
		return v
	}

	return def
}

// Dequeue returns the front element, the rest of the queue, and true.
// On the empty queue it returns the zero value, the empty queue, and false.
// Time: O(1).
func (q Queue[T]) Dequeue() (T, Queue[T], bool) {
	if q.head == nil {
		var zero T
		return zero, q, false
	}

	return q.head.value, Queue[T]{head: q.head.next, size: q.size - 1}, true
}

// DequeueOr behaves like Dequeue but substitutes def for the missing front
// of an empty queue. Time: O(1).
func (q Queue[T]) DequeueOr(def T) (T, Queue[T]) {
	if v, rest, ok := q.Dequeue(); ok {
		return v, rest
	}

	return def, q
}

// Len reports the number of elements. Time: O(1).
func (q Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements. Time: O(1).
func (q Queue[T]) IsEmpty() bool {
	return q.head == nil
}

// Slice returns the elements front-first as a fresh slice. Time: O(n).
func (q Queue[T]) Slice() []T {
	out := make([]T, 0, q.size)
	for c := q.head; c != nil; c = c.next {
		out = append(out, c.value)
	}

	return out
}
