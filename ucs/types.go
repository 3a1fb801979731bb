package ucs

// algo is the name reported in core.Event and error messages.
const algo = "ucs"

// nodeItem is a search node stored in the priority queue, ordered by cost.
type nodeItem[S comparable, A any] struct {
	state   S
	actions []A
	cost    float64
}

// stateOf is the priority-queue key: nodes for the same state compete.
func stateOf[S comparable, A any](n nodeItem[S, A]) S { return n.state }
