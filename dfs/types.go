package dfs

// algo is the name reported in core.Event and error messages.
const algo = "dfs"

// frame is one stack entry: a state and the actions that reached it.
type frame[S comparable, A any] struct {
	state   S
	actions []A
	cost    float64
}
