package frontier

// minCompact is the head offset below which Queue never compacts.
const minCompact = 64

// Queue is a FIFO container backed by a slice with a moving head.
// Popped slots are reclaimed once the dead prefix outgrows the live part.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns an empty queue with room for capacity items.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{items: make([]T, 0, capacity)}
}

// Push appends item at the tail.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the head item. ok is false if the queue is empty.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if q.head == len(q.items) {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	// 1) fully drained: reuse the backing array from the start
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return item, true
	}
	// 2) dead prefix larger than live suffix: shift live items down
	if q.head >= minCompact && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	return item, true
}

// Peek returns the head item without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if q.head == len(q.items) {
		return item, false
	}

	return q.items[q.head], true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }
