package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/frontier"
)

type job struct {
	name string
	tag  int
}

func byName(j job) string { return j.name }

func TestStack_LIFO(t *testing.T) {
	s := frontier.NewStack[int](0)
	assert.True(t, s.Empty())
	_, ok := s.Pop()
	assert.False(t, ok, "pop on empty stack")

	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 3, s.Len())

	var got []int
	for !s.Empty() {
		v, _ := s.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 2, 1}, got)
}

func TestQueue_FIFO(t *testing.T) {
	q := frontier.NewQueue[string](0)
	_, ok := q.Pop()
	assert.False(t, ok, "pop on empty queue")

	q.Push("a")
	q.Push("b")
	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", head)

	v, _ := q.Pop()
	assert.Equal(t, "a", v)
	q.Push("c")
	v, _ = q.Pop()
	assert.Equal(t, "b", v)
	v, _ = q.Pop()
	assert.Equal(t, "c", v)
	assert.True(t, q.Empty())
}

// TestQueue_Compaction interleaves pushes and pops well past the compaction
// threshold and checks order is preserved.
func TestQueue_Compaction(t *testing.T) {
	q := frontier.NewQueue[int](4)
	next, want := 0, 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 7; i++ {
			q.Push(next)
			next++
		}
		for i := 0; i < 5; i++ {
			v, ok := q.Pop()
			require.True(t, ok)
			require.Equal(t, want, v)
			want++
		}
	}
	assert.Equal(t, next-want, q.Len())
	for !q.Empty() {
		v, _ := q.Pop()
		require.Equal(t, want, v)
		want++
	}
	assert.Equal(t, next, want)
}

func TestPriorityQueue_PopOrder(t *testing.T) {
	pq := frontier.NewPriorityQueue(byName)
	pq.Push(job{name: "c"}, 3)
	pq.Push(job{name: "a"}, 1)
	pq.Push(job{name: "b"}, 2)

	var got []string
	for !pq.Empty() {
		j, _, ok := pq.Pop()
		require.True(t, ok)
		got = append(got, j.name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	_, _, ok := pq.Pop()
	assert.False(t, ok)
}

// TestPriorityQueue_StableTies verifies FIFO order among equal priorities.
func TestPriorityQueue_StableTies(t *testing.T) {
	pq := frontier.NewPriorityQueue(byName)
	for _, n := range []string{"x", "y", "z", "w"} {
		pq.Push(job{name: n}, 5)
	}
	pq.Push(job{name: "first"}, 1)

	var got []string
	for !pq.Empty() {
		j, _, _ := pq.Pop()
		got = append(got, j.name)
	}
	assert.Equal(t, []string{"first", "x", "y", "z", "w"}, got)
}

// TestPriorityQueue_UpdateLowers pushes X@10 then Update(X,5): X must come
// back once, at priority 5.
func TestPriorityQueue_UpdateLowers(t *testing.T) {
	pq := frontier.NewPriorityQueue(byName)
	pq.Push(job{name: "X", tag: 1}, 10)
	changed := pq.Update(job{name: "X", tag: 2}, 5)
	assert.True(t, changed)
	assert.Equal(t, 1, pq.Len(), "update must not add a duplicate")

	p, ok := pq.PriorityOf("X")
	require.True(t, ok)
	assert.Equal(t, 5.0, p)

	j, prio, ok := pq.Pop()
	require.True(t, ok)
	assert.Equal(t, 5.0, prio)
	assert.Equal(t, 2, j.tag, "update replaces the stored item")
	assert.True(t, pq.Empty())
	assert.False(t, pq.Contains("X"))
}

func TestPriorityQueue_UpdateNoOpWhenNotBetter(t *testing.T) {
	pq := frontier.NewPriorityQueue(byName)
	pq.Push(job{name: "X", tag: 1}, 4)

	assert.False(t, pq.Update(job{name: "X", tag: 2}, 4), "equal priority is a no-op")
	assert.False(t, pq.Update(job{name: "X", tag: 3}, 9), "higher priority is a no-op")
	assert.Equal(t, 1, pq.Len())

	j, prio, _ := pq.Pop()
	assert.Equal(t, 1, j.tag)
	assert.Equal(t, 4.0, prio)
}

func TestPriorityQueue_UpdateAddsWhenAbsent(t *testing.T) {
	pq := frontier.NewPriorityQueue(byName)
	pq.Push(job{name: "A"}, 2)
	assert.True(t, pq.Update(job{name: "B"}, 1))
	assert.Equal(t, 2, pq.Len())

	j, _, _ := pq.Peek()
	assert.Equal(t, "B", j.name)
}

// TestPriorityQueue_UpdateReordersHeap checks the updated entry moves ahead
// of entries it now beats, and that ties after update favour older entries.
func TestPriorityQueue_UpdateReordersHeap(t *testing.T) {
	pq := frontier.NewPriorityQueue(byName)
	pq.Push(job{name: "A"}, 3)
	pq.Push(job{name: "B"}, 7)
	pq.Push(job{name: "C"}, 5)
	pq.Update(job{name: "B"}, 3)

	var got []string
	for !pq.Empty() {
		j, _, _ := pq.Pop()
		got = append(got, j.name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

// TestPriorityQueue_DuplicatePushes checks Update consults the best of several
// live entries sharing a key.
func TestPriorityQueue_DuplicatePushes(t *testing.T) {
	pq := frontier.NewPriorityQueue(byName)
	pq.Push(job{name: "X", tag: 1}, 8)
	pq.Push(job{name: "X", tag: 2}, 6)

	p, _ := pq.PriorityOf("X")
	assert.Equal(t, 6.0, p)
	assert.False(t, pq.Update(job{name: "X", tag: 3}, 7))
	assert.True(t, pq.Update(job{name: "X", tag: 4}, 2))
	assert.Equal(t, 2, pq.Len())

	j, prio, _ := pq.Pop()
	assert.Equal(t, 4, j.tag)
	assert.Equal(t, 2.0, prio)

	j, prio, _ = pq.Pop()
	assert.Equal(t, 1, j.tag)
	assert.Equal(t, 8.0, prio)
}
