// Package frontier provides the three ordering containers the search
// algorithms are built on:
//
//   - Stack[T]:            LIFO, used by depth-first search.
//   - Queue[T]:            FIFO, used by breadth-first search.
//   - PriorityQueue[T, K]: binary min-heap keyed by a float64 priority, with
//     an update-if-better operation keyed by K, used by uniform-cost and A*.
//
// Determinism
//
//	PriorityQueue breaks ties by insertion sequence: among entries with equal
//	priority the one pushed first is popped first. An Update that lowers a
//	priority counts as a fresh insertion. Given the same sequence of calls the
//	pop order is therefore fully reproducible.
//
// Complexity
//
//   - Stack, Queue: Push and Pop are O(1) amortized.
//   - PriorityQueue: Push, Pop and Update are O(log n).
//
// The containers are not safe for concurrent use; each search owns its own.
package frontier
