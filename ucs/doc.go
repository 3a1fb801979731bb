// Package ucs implements uniform-cost search over any core.Problem: Dijkstra's
// shortest-path algorithm specialised to implicit graphs generated on demand
// by Problem.Successors.
//
// Uniform-cost search always expands the frontier node with the lowest
// cumulative path cost, so nodes are finalised in non-decreasing cost order
// and the first goal popped is a cheapest solution whenever step costs are
// positive.
//
// Complexity (C* = optimal cost, ε = smallest step cost, b = branching factor):
//
//   - Time:  O(b^(1+⌊C*/ε⌋) · log n)
//   - Each pop and each Update costs O(log n), n = frontier size.
//   - Space: O(b^(1+⌊C*/ε⌋))
//   - best-cost map plus the frontier.
//
// Notes on implementation choices:
//
//   - The frontier is a frontier.PriorityQueue keyed by state. Successors are
//     inserted with Update: a state already waiting at a higher cost has its
//     entry lowered in place (decrease-key) instead of gaining a duplicate; a
//     state waiting at a lower-or-equal cost is left alone.
//   - best maps each expanded state to the lowest cost at which it was
//     accepted. A popped node is accepted if its state is new or its cost is
//     strictly lower than the recorded one; otherwise it is a stale entry and
//     is skipped.
//   - Ties at equal cost pop in insertion order, making runs reproducible.
//   - If the frontier empties, the last accepted action list is returned with
//     Found == false and Outcome Exhausted.
package ucs
