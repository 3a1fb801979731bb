// Package astar implements A* best-first search over any core.Problem,
// ordering the frontier by f = g + h: the cumulative path cost g plus a
// caller-supplied heuristic estimate h of the cost still to go.
//
// What
//
//   - A popped node is goal-tested before anything else, so a goal that
//     reaches the head of the frontier is always accepted.
//   - Every popped node is recorded as explored with its path cost.
//   - A successor's path cost is obtained from Problem.CostOfActions on the
//     full extended action list rather than by adding the step cost. Problems
//     whose CostOfActions disagrees with the summed step costs therefore see
//     their own notion of cost honoured.
//   - A successor is dominated, and discarded, when a record already exists for
//     its state with cost <= the new cost. Otherwise it is pushed with priority
//     g + h and recorded immediately.
//   - If the frontier empties, the last popped action list is returned with
//     Found == false and Outcome Exhausted.
//
// Records are kept as a map from state to the lowest recorded cost. A record
// list scanned in arrival order discards exactly the same successors, since
// "some record has cost <= g" holds iff "the lowest record has cost <= g".
//
// Optimality
//
//	The returned path is optimal when h is admissible (never overestimates the
//	true remaining cost). Admissibility is not verified. NullHeuristic turns
//	A* into a uniform-cost search.
//
// Complexity
//
//   - Time and memory depend on the heuristic; with h = 0 they match ucs.
//   - Each successor costs one CostOfActions call, O(depth) for most problems.
//
// Errors
//
//   - core.ErrNilProblem, core.ErrNilHeuristic, core.ErrOptionViolation,
//     core.ErrNonPositiveStepCost, core.ErrExpansionLimit, ctx.Err(), and
//     wrapped Successors / CostOfActions errors.
package astar
