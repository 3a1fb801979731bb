package frontier

import "container/heap"

// PriorityQueue is a min-heap of items ordered by a float64 priority.
// Each item maps to a key K (for search: its state) so that Update can find
// and improve an existing entry instead of adding a duplicate.
//
// Push always inserts, so several live entries may share a key; Update only
// ever touches the lowest-priority live entry of its key.
type PriorityQueue[T any, K comparable] struct {
	h    entryHeap[T, K]
	live map[K][]*entry[T, K]
	key  func(T) K
	seq  uint64
}

// entry is a heap slot. index is maintained by entryHeap for heap.Fix.
type entry[T any, K comparable] struct {
	item     T
	key      K
	priority float64
	seq      uint64
	index    int
}

// NewPriorityQueue returns an empty queue that identifies items by key(item).
func NewPriorityQueue[T any, K comparable](key func(T) K) *PriorityQueue[T, K] {
	return &PriorityQueue[T, K]{
		h:    make(entryHeap[T, K], 0, 64),
		live: make(map[K][]*entry[T, K]),
		key:  key,
	}
}

// Push inserts item with the given priority, even if its key is already queued.
func (pq *PriorityQueue[T, K]) Push(item T, priority float64) {
	e := &entry[T, K]{
		item:     item,
		key:      pq.key(item),
		priority: priority,
		seq:      pq.nextSeq(),
	}
	heap.Push(&pq.h, e)
	pq.live[e.key] = append(pq.live[e.key], e)
}

// Pop removes and returns the item with the lowest priority.
// Among equal priorities the earliest inserted wins. ok is false if empty.
func (pq *PriorityQueue[T, K]) Pop() (item T, priority float64, ok bool) {
	if len(pq.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&pq.h).(*entry[T, K])
	pq.forget(e)

	return e.item, e.priority, true
}

// Peek returns the lowest-priority item without removing it.
func (pq *PriorityQueue[T, K]) Peek() (item T, priority float64, ok bool) {
	if len(pq.h) == 0 {
		return item, 0, false
	}

	return pq.h[0].item, pq.h[0].priority, true
}

// Update adds item if no entry with its key is queued. If the best queued
// entry for the key has a higher priority, that entry is replaced by item at
// the new priority. If it already has lower-or-equal priority, Update is a no-op.
// It reports whether the queue changed.
func (pq *PriorityQueue[T, K]) Update(item T, priority float64) bool {
	k := pq.key(item)
	best := pq.best(k)
	switch {
	case best == nil:
		pq.Push(item, priority)
		return true
	case best.priority <= priority:
		return false
	default:
		best.item = item
		best.priority = priority
		best.seq = pq.nextSeq()
		heap.Fix(&pq.h, best.index)
		return true
	}
}

// Contains reports whether an entry with key k is queued.
func (pq *PriorityQueue[T, K]) Contains(k K) bool {
	return len(pq.live[k]) > 0
}

// PriorityOf returns the lowest queued priority for key k.
func (pq *PriorityQueue[T, K]) PriorityOf(k K) (float64, bool) {
	if best := pq.best(k); best != nil {
		return best.priority, true
	}

	return 0, false
}

// Len returns the number of queued entries, duplicates included.
func (pq *PriorityQueue[T, K]) Len() int { return len(pq.h) }

// Empty reports whether the queue holds no entries.
func (pq *PriorityQueue[T, K]) Empty() bool { return len(pq.h) == 0 }

func (pq *PriorityQueue[T, K]) nextSeq() uint64 {
	pq.seq++
	return pq.seq
}

// best returns the lowest-priority live entry for k, or nil.
func (pq *PriorityQueue[T, K]) best(k K) *entry[T, K] {
	var best *entry[T, K]
	for _, e := range pq.live[k] {
		if best == nil || e.less(best) {
			best = e
		}
	}

	return best
}

// forget drops a popped entry from the live index.
func (pq *PriorityQueue[T, K]) forget(e *entry[T, K]) {
	list := pq.live[e.key]
	for i, x := range list {
		if x == e {
			list[i] = list[len(list)-1]
			list[len(list)-1] = nil
			list = list[:len(list)-1]
			break
		}
	}
	if len(list) == 0 {
		delete(pq.live, e.key)
		return
	}
	pq.live[e.key] = list
}

func (e *entry[T, K]) less(o *entry[T, K]) bool {
	if e.priority != o.priority {
		return e.priority < o.priority
	}

	return e.seq < o.seq
}

// entryHeap implements heap.Interface over entries.
type entryHeap[T any, K comparable] []*entry[T, K]

func (h entryHeap[T, K]) Len() int           { return len(h) }
func (h entryHeap[T, K]) Less(i, j int) bool { return h[i].less(h[j]) }
func (h entryHeap[T, K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[T, K]) Push(x any) {
	e := x.(*entry[T, K])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *entryHeap[T, K]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}
