// Package lvsearch is a generic state-space search engine: describe a
// problem once, then let depth-first, breadth-first, uniform-cost or A*
// search find a sequence of actions from its start to a goal.
//
// 🚀 What is inside?
//
//	• core/           the Problem contract, Result, options and hooks
//	• frontier/       Stack, Queue and a keyed PriorityQueue with update-if-better
//	• dfs/ bfs/       uninformed tree searches over any core.Problem
//	• ucs/            uniform-cost search (Dijkstra on implicit graphs)
//	• astar/          A* with any heuristic; NullHeuristic turns it into UCS
//	• puzzle/         the fifteen-puzzle domain and heuristics h1..h4
//	• graphproblem/   explicit weighted graphs, built in code or loaded from YAML
//	• cli/            the lvsearch command (solve, compare, inspect)
//
// ✨ Why lvsearch?
//
//   - Generic: states are any comparable type, actions any type
//   - Deterministic: fixed successor order and FIFO tie-breaking
//   - Observable: OnExpand/OnPush hooks, expansion limits, context cancellation
//   - Honest: every algorithm keeps its textbook quirks, documented per package
//
// Quick example:
//
//	start, _ := puzzle.Preset(3)
//	res, err := astar.AStar[puzzle.State, puzzle.Move](puzzle.NewProblem(start), puzzle.Manhattan)
//	// res.Actions: [up left ...], res.Found: true, res.Expanded: ...
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
