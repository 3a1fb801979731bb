package graphproblem

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsearch/core"
)

// Graph is a directed weighted graph with a start vertex and a goal set.
// adjacency[from][to] holds the arc weight; at most one arc per ordered pair.
type Graph struct {
	vertices  map[string]struct{}
	adjacency map[string]map[string]float64
	goals     map[string]struct{}
	start     string
}

var _ core.Problem[string, string] = (*Graph)(nil)

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]float64),
		goals:     make(map[string]struct{}),
	}
}

// AddVertex adds id if it is not present yet.
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; !ok {
		g.vertices[id] = struct{}{}
		g.adjacency[id] = make(map[string]float64)
	}

	return nil
}

// AddEdge adds the arc from→to, creating missing vertices.
// Returns ErrBadWeight for weight <= 0 and ErrDuplicateEdge if the arc exists.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if weight <= 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}
	if _, dup := g.adjacency[from][to]; dup {
		return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
	}
	g.adjacency[from][to] = weight

	return nil
}

// AddUndirected adds the arcs a→b and b→a with the same weight.
func (g *Graph) AddUndirected(a, b string, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	if a == b {
		return nil
	}

	return g.AddEdge(b, a, weight)
}

// SetStart sets the start vertex; it must exist.
func (g *Graph) SetStart(id string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: start %q", ErrVertexNotFound, id)
	}
	g.start = id

	return nil
}

// AddGoal marks an existing vertex as a goal.
func (g *Graph) AddGoal(id string) error {
	if !g.HasVertex(id) {
		return fmt.Errorf("%w: goal %q", ErrVertexNotFound, id)
	}
	g.goals[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns all arcs ordered by (From, To).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, from := range g.Vertices() {
		for _, to := range g.neighborIDs(from) {
			out = append(out, Edge{From: from, To: to, Weight: g.adjacency[from][to]})
		}
	}

	return out
}

// Validate checks that a start vertex is set.
func (g *Graph) Validate() error {
	if g.start == "" {
		return ErrNoStart
	}

	return nil
}

// neighborIDs returns the destinations of id in ascending order.
func (g *Graph) neighborIDs(id string) []string {
	nbrs := g.adjacency[id]
	out := make([]string, 0, len(nbrs))
	for to := range nbrs {
		out = append(out, to)
	}
	sort.Strings(out)

	return out
}

// Start returns the start vertex.
func (g *Graph) Start() string { return g.start }

// IsGoal reports whether id is a goal vertex.
func (g *Graph) IsGoal(id string) bool {
	_, ok := g.goals[id]
	return ok
}

// Successors lists the arcs leaving id, ordered by destination.
// The action of each successor is its destination ID.
func (g *Graph) Successors(id string) ([]core.Successor[string, string], error) {
	if !g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	to := g.neighborIDs(id)
	out := make([]core.Successor[string, string], 0, len(to))
	for _, v := range to {
		out = append(out, core.Successor[string, string]{State: v, Action: v, Cost: g.adjacency[id][v]})
	}

	return out, nil
}

// CostOfActions walks actions from the start vertex and sums arc weights.
// Returns ErrIllegalAction at the first action with no matching arc.
func (g *Graph) CostOfActions(actions []string) (float64, error) {
	cur, total := g.start, 0.0
	for i, next := range actions {
		w, ok := g.adjacency[cur][next]
		if !ok {
			return 0, fmt.Errorf("%w: step %d %s→%s", ErrIllegalAction, i, cur, next)
		}
		total += w
		cur = next
	}

	return total, nil
}
