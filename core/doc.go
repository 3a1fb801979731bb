// Package core defines the contract shared by every search algorithm in lvsearch:
// the Problem a domain must expose, the Heuristic used by informed search,
// the Result every algorithm returns, and the functional options that bound
// or observe a single search invocation.
//
// What
//
//   - Problem[S, A]: Start, IsGoal, Successors and CostOfActions.
//     S is any comparable state type (equality is ==, hashing is Go map hashing);
//     A is any action type.
//   - Successor[S, A]: one (state, action, step cost) transition.
//   - Heuristic[S]: a pure estimate of the remaining cost from a state.
//   - Result[A]: the action path, success flag, Outcome and diagnostics.
//   - Options: context cancellation, expansion limit, OnExpand/OnPush hooks.
//
// Why
//
//	The four algorithms (dfs, bfs, ucs, astar) differ only in frontier order,
//	duplicate detection and termination rules. Keeping the problem contract,
//	the result shape and the options here lets them stay interchangeable:
//
//		res, err := bfs.BFS[S, A](problem)
//		res, err := astar.AStar[S, A](problem, heuristic, core.WithMaxExpansions(1e6))
//
// Failure vs. empty path
//
//	"No solution" is never an error. It is a Result with Found == false and an
//	Outcome describing why the search stopped. A successful zero-length path
//	(the start state is already a goal) is Found == true with empty Actions.
//
// Errors
//
//   - ErrNilProblem           if a nil Problem is passed.
//   - ErrNilHeuristic         if A* receives a nil Heuristic.
//   - ErrNonPositiveStepCost  if a Successor reports a step cost <= 0.
//   - ErrExpansionLimit       if WithMaxExpansions stopped the search.
//   - ErrOptionViolation      for invalid options (e.g. negative limit).
//   - Problem errors (Successors, CostOfActions) are wrapped and returned as-is
//     for errors.Is / errors.As.
//   - ctx.Err() when the context supplied via WithContext is done.
package core
