package graphproblem

import "errors"

// Sentinel errors for graph construction and search.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("graphproblem: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graphproblem: vertex not found")

	// ErrDuplicateEdge indicates a second edge between the same ordered pair.
	ErrDuplicateEdge = errors.New("graphproblem: duplicate edge")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("graphproblem: edge weight must be positive")

	// ErrIllegalAction indicates an action list that does not follow edges from the start.
	ErrIllegalAction = errors.New("graphproblem: illegal action")

	// ErrNoStart indicates the graph has no start vertex.
	ErrNoStart = errors.New("graphproblem: start vertex not set")
)

// Edge is one directed, weighted arc.
type Edge struct {
	From   string
	To     string
	Weight float64
}
