package core

// Outcome tells why a search stopped.
type Outcome int

const (
	// Solved means a goal state was popped from the frontier.
	Solved Outcome = iota
	// Exhausted means the frontier emptied without reaching a goal.
	Exhausted
	// CycleAborted means DFS met a repeated successor and gave up.
	CycleAborted
	// LimitReached means WithMaxExpansions stopped the search.
	LimitReached
)

// String returns a lower-case name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	case CycleAborted:
		return "cycle-aborted"
	case LimitReached:
		return "limit-reached"
	default:
		return "unknown"
	}
}

// Result is what every search algorithm returns.
//
//   - Actions: the solution when Found; otherwise the last examined action list
//     (bfs, ucs, astar), empty after an exhausted DFS, nil after a DFS cycle abort.
//   - Found: true iff a goal state was reached.
//   - Outcome: why the search stopped.
//   - Cost: cost of Actions as tracked by the algorithm.
//   - Expanded: number of states whose successors were generated.
//   - MaxFrontier: peak number of frontier entries.
type Result[A any] struct {
	Actions     []A
	Found       bool
	Outcome     Outcome
	Cost        float64
	Expanded    int
	MaxFrontier int
}

// Len returns the number of actions in the result.
func (r *Result[A]) Len() int {
	if r == nil {
		return 0
	}

	return len(r.Actions)
}
