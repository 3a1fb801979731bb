package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// walker encapsulates mutable DFS state for one invocation.
type walker[S comparable, A any] struct {
	problem  core.Problem[S, A]
	tr       *core.Tracker
	stack    *frontier.Stack[frame[S, A]]
	explored map[S]struct{}
	repeated map[S]struct{}
}

// DFS runs depth-first search on p.
//
// It returns a Result whose Outcome is Solved, Exhausted or CycleAborted.
// With WithMaxExpansions the partial Result is returned together with
// core.ErrExpansionLimit; on cancellation together with ctx.Err().
func DFS[S comparable, A any](p core.Problem[S, A], opts ...core.Option) (*core.Result[A], error) {
	// 1. Validate input
	if p == nil {
		return nil, core.ErrNilProblem
	}
	tr, err := core.NewTracker(algo, opts...)
	if err != nil {
		return nil, err
	}

	// 2. Prepare walker and seed with the start state
	w := &walker[S, A]{
		problem:  p,
		tr:       tr,
		stack:    frontier.NewStack[frame[S, A]](64),
		explored: make(map[S]struct{}),
		repeated: make(map[S]struct{}),
	}
	w.stack.Push(frame[S, A]{state: p.Start(), actions: []A{}})
	tr.Observe(w.stack.Len())

	// 3. Main loop
	res, err := w.loop()

	return core.Finish(tr, res), err
}

// loop pops frames until a goal, a repeated successor, an empty stack or an error.
func (w *walker[S, A]) loop() (*core.Result[A], error) {
	for !w.stack.Empty() {
		if err := w.tr.Check(); err != nil {
			return &core.Result[A]{Outcome: core.Exhausted}, err
		}

		f, _ := w.stack.Pop()
		if w.problem.IsGoal(f.state) {
			return &core.Result[A]{Actions: f.actions, Found: true, Outcome: core.Solved, Cost: f.cost}, nil
		}
		if _, done := w.explored[f.state]; done {
			continue
		}
		if w.tr.LimitReached() {
			return &core.Result[A]{Actions: f.actions, Outcome: core.LimitReached, Cost: f.cost},
				fmt.Errorf("%s: %w", algo, core.ErrExpansionLimit)
		}

		cycle, err := w.expand(f)
		if err != nil {
			return &core.Result[A]{Actions: f.actions, Outcome: core.Exhausted, Cost: f.cost}, err
		}
		if cycle {
			return &core.Result[A]{Outcome: core.CycleAborted}, nil
		}
	}

	return &core.Result[A]{Actions: []A{}, Outcome: core.Exhausted}, nil
}

// expand marks f explored and pushes its successors. It reports true as soon
// as a successor state was already pushed earlier, leaving the rest unpushed.
func (w *walker[S, A]) expand(f frame[S, A]) (bool, error) {
	w.explored[f.state] = struct{}{}
	if err := w.tr.Expand(len(f.actions), f.cost, w.stack.Len()); err != nil {
		return false, err
	}

	succs, err := w.problem.Successors(f.state)
	if err != nil {
		return false, fmt.Errorf("%s: successors at depth %d: %w", algo, len(f.actions), err)
	}
	for _, s := range succs {
		if err = core.CheckStep(algo, s); err != nil {
			return false, err
		}
		if _, seen := w.repeated[s.State]; seen {
			return true, nil
		}
		next := frame[S, A]{
			state:   s.State,
			actions: core.Extend(f.actions, s.Action),
			cost:    f.cost + s.Cost,
		}
		w.stack.Push(next)
		w.tr.Pushed(len(next.actions), next.cost, 0, w.stack.Len())
		w.repeated[s.State] = struct{}{}
	}

	return false, nil
}
