// Package dfs implements depth-first search over any core.Problem.
//
// What
//
//   - Explore the most recently discovered state first, using a LIFO stack of
//     (state, actions-so-far) frames seeded with (Start, []).
//   - Goal test on pop: the first goal popped ends the search (Outcome Solved).
//   - Each state is expanded at most once (an explored set checked on pop).
//   - A second set records every state ever pushed as a successor. Meeting one
//     of those states again while expanding is treated as a cycle and the whole
//     search stops with Outcome CycleAborted, Found == false and nil Actions.
//   - An emptied stack ends with Outcome Exhausted and empty Actions.
//   - Result.Expanded reports how many states were expanded, for diagnostics.
//
// Known limitation
//
//	Aborting on the first repeated successor, rather than skipping it, means
//	DFS is not complete on problems whose state graph contains cycles or
//	converging paths: it may give up although a solution exists. This is the
//	observable contract of this package and is kept deliberately; use bfs, ucs
//	or astar when completeness matters.
//
// Complexity (b = branching factor, m = maximum depth reached)
//
//   - Time:   O(b·m) expansions before the first repeat in the worst case.
//   - Memory: O(b·m) for the stack plus the explored and repeated sets.
//
// Options (core.Option)
//
//   - core.WithContext(ctx)         cancellation, checked once per pop.
//   - core.WithMaxExpansions(n)     stop with ErrExpansionLimit after n expansions.
//   - core.WithOnExpand(fn)         hook before each expansion; error aborts.
//   - core.WithOnPush(fn)           hook after each push.
//
// Errors
//
//   - core.ErrNilProblem, core.ErrOptionViolation, core.ErrNonPositiveStepCost,
//     core.ErrExpansionLimit, ctx.Err(), and wrapped Problem.Successors errors.
package dfs
