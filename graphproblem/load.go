package graphproblem

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the YAML form of a Graph.
type Spec struct {
	Start      string     `yaml:"start"`
	Goals      []string   `yaml:"goals"`
	Undirected bool       `yaml:"undirected,omitempty"`
	Vertices   []string   `yaml:"vertices,omitempty"`
	Edges      []EdgeSpec `yaml:"edges"`
}

// EdgeSpec is one YAML edge. A zero or omitted weight means 1.
type EdgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight,omitempty"`
}

// Load reads and builds a Graph from a YAML file.
func Load(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphproblem: failed to read file: %w", err)
	}

	return Parse(data)
}

// Parse builds a Graph from YAML bytes.
func Parse(data []byte) (*Graph, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("graphproblem: failed to parse YAML: %w", err)
	}

	return spec.Build()
}

// Build turns the spec into a validated Graph.
func (s *Spec) Build() (*Graph, error) {
	g := New()
	for _, v := range s.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for i, e := range s.Edges {
		w := e.Weight
		if w == 0 {
			w = 1
		}
		add := g.AddEdge
		if s.Undirected {
			add = g.AddUndirected
		}
		if err := add(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("graphproblem: edge %d: %w", i, err)
		}
	}
	if s.Start == "" {
		return nil, ErrNoStart
	}
	if err := g.SetStart(s.Start); err != nil {
		return nil, err
	}
	for _, goal := range s.Goals {
		if err := g.AddGoal(goal); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Spec returns the YAML form of g. Arcs are listed individually.
func (g *Graph) Spec() *Spec {
	s := &Spec{Start: g.start, Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		s.Edges = append(s.Edges, EdgeSpec{From: e.From, To: e.To, Weight: e.Weight})
	}
	for _, v := range s.Vertices {
		if g.IsGoal(v) {
			s.Goals = append(s.Goals, v)
		}
	}

	return s
}

// Marshal encodes g as YAML.
func (g *Graph) Marshal() ([]byte, error) {
	return yaml.Marshal(g.Spec())
}
