package astar

import "github.com/katalvlaran/lvsearch/core"

// algo is the name reported in core.Event and error messages.
const algo = "astar"

// nodeItem is a search node stored in the priority queue, ordered by g + h.
type nodeItem[S comparable, A any] struct {
	state   S
	actions []A
	cost    float64
}

func stateOf[S comparable, A any](n nodeItem[S, A]) S { return n.state }

// NullHeuristic is the trivial heuristic: it always returns 0.
func NullHeuristic[S comparable](S) float64 { return 0 }

// Null returns NullHeuristic as a core.Heuristic for state type S.
func Null[S comparable]() core.Heuristic[S] { return NullHeuristic[S] }
