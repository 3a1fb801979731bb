package core

import "errors"

// Sentinel errors shared by all search algorithms.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a search.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrNilHeuristic is returned when an informed search receives a nil Heuristic.
	ErrNilHeuristic = errors.New("core: heuristic is nil")

	// ErrNonPositiveStepCost is returned when a Successor reports a step cost <= 0.
	ErrNonPositiveStepCost = errors.New("core: step cost must be positive")

	// ErrExpansionLimit is returned together with a partial Result when
	// WithMaxExpansions stopped the search before it terminated.
	ErrExpansionLimit = errors.New("core: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)

// Successor is a single transition produced by Problem.Successors.
type Successor[S comparable, A any] struct {
	// State is the state reached by taking Action.
	State S

	// Action identifies the transition.
	Action A

	// Cost is the step cost of the transition; it must be > 0.
	Cost float64
}

// Problem is the capability every searchable domain implements.
//
// States must be immutable values: algorithms store them as map keys and share
// them between the frontier and the explored set without copying.
type Problem[S comparable, A any] interface {
	// Start returns the initial state.
	Start() S

	// IsGoal reports whether state is a goal state.
	IsGoal(state S) bool

	// Successors lists the transitions available from state, in a fixed order.
	// An error aborts the search and is returned to the caller.
	Successors(state S) ([]Successor[S, A], error)

	// CostOfActions returns the total cost of applying actions from Start.
	// It is only defined for sequences of legal moves; implementations may
	// return an error for anything else.
	CostOfActions(actions []A) (float64, error)
}

// Heuristic estimates the cost remaining from state to the nearest goal.
// It must be non-negative; admissibility is the caller's responsibility.
type Heuristic[S comparable] func(state S) float64

// Extend returns a new slice holding actions followed by a.
// The input slice is never aliased, so sibling nodes can share a prefix safely.
func Extend[A any](actions []A, a A) []A {
	out := make([]A, len(actions)+1)
	copy(out, actions)
	out[len(actions)] = a

	return out
}
