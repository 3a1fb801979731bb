// Package bfs provides breadth-first search over any core.Problem,
// returning the action path with the fewest actions.
//
// What
//
//   - Explore nodes level by level from the start state, using a FIFO queue
//     of (state, actions, cost) nodes.
//   - Duplicate detection happens on pop only: a state already explored is
//     discarded when it reaches the head of the queue. Several copies of the
//     same state may therefore wait in the queue at once; this costs memory,
//     never correctness.
//   - The goal test runs on the popped, newly explored node.
//   - If the queue empties, the last examined action list is returned with
//     Found == false and Outcome Exhausted.
//
// Why
//
//	With positive step costs, expansion in strict level order yields a
//	solution with the minimum number of actions.
//
// Determinism
//
//	Successors are enqueued in the order the Problem lists them, so the
//	search order and the returned path are reproducible.
//
// Complexity (b = branching factor, d = solution depth)
//
//   - Time:   O(b^d) expansions.
//   - Memory: O(b^d) for the queue and the explored set.
//
// Options
//
//   - core.WithContext, core.WithMaxExpansions, core.WithOnExpand, core.WithOnPush.
//
// Errors
//
//   - core.ErrNilProblem, core.ErrOptionViolation, core.ErrNonPositiveStepCost,
//     core.ErrExpansionLimit, ctx.Err(), wrapped Problem.Successors errors,
//     and wrapped OnExpand hook errors.
package bfs
