package frontier

// Stack is a LIFO container backed by a slice.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack with room for capacity items.
func NewStack[T any](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds item on top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return item, false
	}
	item = s.items[n-1]
	var zero T
	s.items[n-1] = zero // release references held by the popped slot
	s.items = s.items[:n-1]

	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of items.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
