package stack

// cell is one link of the immutable chain backing a Stack.
type cell[T any] struct {
	value T
	next  *cell[T]
}

// Stack is a persistent LIFO sequence; the zero value is the empty stack.
type Stack[T any] struct {
	head *cell[T]
	size int
}

// New builds a stack from items, with items[0] on top. The remaining items
// follow in order, so New(6, 5, 4) pops 6 first. Time: O(n).
func New[T any](items ...T) Stack[T] {
	var s Stack[T]
	for i := len(items) - 1; i >= 0; i-- { // build bottom-up so items[0] ends on top
		s = s.Push(items[i])
	}

	return s
}

// Push returns a new stack with v on top. The receiver is unchanged and
// becomes the new stack's tail. Time: O(1).
func (s Stack[T]) Push(v T) Stack[T] {
	return Stack[T]{
		head: &cell[T]{value: v, next: s.head},
		size: s.size + 1,
	}
}

// Top returns the top element and true, or the zero value and false when
// the stack is empty. Time: O(1).
func (s Stack[T]) Top() (T, bool) {
	if s.head == nil {
		var zero T
		return zero, false
	}

	return s.head.value, true
}

// TopOr returns the top element, or def when the stack is empty. Time: O(1).
func (s Stack[T]) TopOr(def T) T {
	if v, ok := s.Top(); ok {
		return v
	}

	return def
}

// Pop returns the top element, the remainder of the stack, and true.
// On the empty stack it returns the zero value, the empty stack, and false.
// Time: O(1).
func (s Stack[T]) Pop() (T, Stack[T], bool) {
	if s.head == nil {
		var zero T
		return zero, s, false
	}

	return s.head.value, Stack[T]{head: s.head.next, size: s.size - 1}, true
}

// PopOr behaves like Pop but substitutes def for the missing top of an
// empty stack. Time: O(1).
func (s Stack[T]) PopOr(def T) (T, Stack[T]) {
	if v, rest, ok := s.Pop(); ok {
		return v, rest
	}

	return def, s
}

// Len reports the number of elements. Time: O(1).
func (s Stack[T]) Len() int {
	return s.size
}

// IsEmpty reports whether the stack holds no elements. Time: O(1).
func (s Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Slice returns the elements top-first as a fresh slice. Time: O(n).
func (s Stack[T]) Slice() []T {
	out := make([]T, 0, s.size)
	for c := s.head; c != nil; c = c.next {
		out = append(out, c.value)
	}

	return out
}
