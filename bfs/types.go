package bfs

// algo is the name reported in core.Event and error messages.
const algo = "bfs"

// queueItem pairs a state with the actions that reached it and their cost.
type queueItem[S comparable, A any] struct {
	state   S
	actions []A
	cost    float64
}
