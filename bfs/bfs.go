package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// walker encapsulates mutable BFS state.
type walker[S comparable, A any] struct {
	problem  core.Problem[S, A]
	tr       *core.Tracker
	queue    *frontier.Queue[queueItem[S, A]]
	explored map[S]struct{}
	last     queueItem[S, A] // most recently examined node
}

// BFS runs breadth-first search on p, applying any number of core.Options.
// Returns core.ErrNilProblem or core.ErrOptionViolation for invalid input;
// any error raised while searching is returned with the partial Result.
func BFS[S comparable, A any](p core.Problem[S, A], opts ...core.Option) (*core.Result[A], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	tr, err := core.NewTracker(algo, opts...)
	if err != nil {
		return nil, err
	}

	w := &walker[S, A]{
		problem:  p,
		tr:       tr,
		queue:    frontier.NewQueue[queueItem[S, A]](64),
		explored: make(map[S]struct{}),
		last:     queueItem[S, A]{state: p.Start(), actions: []A{}},
	}
	// Seed queue with the start node
	w.queue.Push(w.last)
	tr.Observe(w.queue.Len())

	res, err := w.loop()

	return core.Finish(tr, res), err
}

// loop processes the queue until a goal, exhaustion, error or cancellation.
func (w *walker[S, A]) loop() (*core.Result[A], error) {
	for !w.queue.Empty() {
		// cancellation check (once per loop)
		if err := w.tr.Check(); err != nil {
			return w.partial(core.Exhausted), err
		}

		item, _ := w.queue.Pop()
		if _, done := w.explored[item.state]; done {
			continue
		}
		w.explored[item.state] = struct{}{}
		w.last = item

		if w.problem.IsGoal(item.state) {
			return &core.Result[A]{Actions: item.actions, Found: true, Outcome: core.Solved, Cost: item.cost}, nil
		}
		if w.tr.LimitReached() {
			return w.partial(core.LimitReached), fmt.Errorf("%s: %w", algo, core.ErrExpansionLimit)
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return w.partial(core.Exhausted), err
		}
	}

	return w.partial(core.Exhausted), nil
}

// enqueueSuccessors expands item and enqueues every successor, explored or not.
func (w *walker[S, A]) enqueueSuccessors(item queueItem[S, A]) error {
	if err := w.tr.Expand(len(item.actions), item.cost, w.queue.Len()); err != nil {
		return err
	}
	succs, err := w.problem.Successors(item.state)
	if err != nil {
		return fmt.Errorf("%s: successors at depth %d: %w", algo, len(item.actions), err)
	}
	for _, s := range succs {
		if err = core.CheckStep(algo, s); err != nil {
			return err
		}
		next := queueItem[S, A]{
			state:   s.State,
			actions: core.Extend(item.actions, s.Action),
			cost:    item.cost + s.Cost,
		}
		w.queue.Push(next)
		w.tr.Pushed(len(next.actions), next.cost, 0, w.queue.Len())
	}

	return nil
}

// partial returns a failure Result carrying the last examined node.
func (w *walker[S, A]) partial(o core.Outcome) *core.Result[A] {
	return &core.Result[A]{Actions: w.last.actions, Outcome: o, Cost: w.last.cost}
}
