// Package graphproblem exposes an explicit, weighted, directed graph as a
// core.Problem, so the search algorithms can run on route maps, state
// machines or any small hand-written state space.
//
// States are vertex IDs (strings). An action is the ID of the vertex to move
// to, so the action list of a solution reads as the route itself. Successors
// are listed in ascending destination order, which makes every search over a
// Graph deterministic.
//
// Graphs can be built in code:
//
//	g := graphproblem.New()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddUndirected("B", "C", 2.5)
//	_ = g.SetStart("A")
//	_ = g.AddGoal("C")
//
// or loaded from YAML with Load/Parse:
//
//	start: A
//	goals: [C]
//	undirected: false
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C}        # weight defaults to 1
//
// A Graph is not safe for concurrent mutation. Once built it may be searched
// from several goroutines at once, since searches only read it.
package graphproblem
