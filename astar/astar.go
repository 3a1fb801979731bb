package astar

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// AStar searches p for a path to a goal, expanding nodes in order of
// path cost plus h(state).
//
// Returns core.ErrNilProblem, core.ErrNilHeuristic or core.ErrOptionViolation
// for invalid input. Errors raised while searching are returned with the
// partial Result.
func AStar[S comparable, A any](p core.Problem[S, A], h core.Heuristic[S], opts ...core.Option) (*core.Result[A], error) {
	if p == nil {
		return nil, core.ErrNilProblem
	}
	if h == nil {
		return nil, core.ErrNilHeuristic
	}
	tr, err := core.NewTracker(algo, opts...)
	if err != nil {
		return nil, err
	}

	start := p.Start()
	r := &runner[S, A]{
		problem:  p,
		h:        h,
		tr:       tr,
		explored: make(map[S]float64),
		pq:       frontier.NewPriorityQueue(stateOf[S, A]),
		last:     nodeItem[S, A]{state: start, actions: []A{}},
	}
	r.pq.Push(r.last, h(start))
	tr.Observe(r.pq.Len())

	res, err := r.process()

	return core.Finish(tr, res), err
}

// runner holds the mutable state for a single A* execution.
type runner[S comparable, A any] struct {
	problem  core.Problem[S, A]
	h        core.Heuristic[S]
	tr       *core.Tracker
	explored map[S]float64 // state → lowest recorded path cost
	pq       *frontier.PriorityQueue[nodeItem[S, A], S]
	last     nodeItem[S, A] // most recently popped node
}

func (r *runner[S, A]) process() (*core.Result[A], error) {
	for !r.pq.Empty() {
		if err := r.tr.Check(); err != nil {
			return r.partial(core.Exhausted), err
		}

		n, _, _ := r.pq.Pop()
		r.last = n
		if r.problem.IsGoal(n.state) {
			return &core.Result[A]{Actions: n.actions, Found: true, Outcome: core.Solved, Cost: n.cost}, nil
		}
		r.record(n.state, n.cost)

		if r.tr.LimitReached() {
			return r.partial(core.LimitReached), fmt.Errorf("%s: %w", algo, core.ErrExpansionLimit)
		}
		if err := r.expand(n); err != nil {
			return r.partial(core.Exhausted), err
		}
	}

	return r.partial(core.Exhausted), nil
}

// expand pushes every successor of n that is not dominated by an explored record.
func (r *runner[S, A]) expand(n nodeItem[S, A]) error {
	if err := r.tr.Expand(len(n.actions), n.cost, r.pq.Len()); err != nil {
		return err
	}
	succs, err := r.problem.Successors(n.state)
	if err != nil {
		return fmt.Errorf("%s: successors at depth %d: %w", algo, len(n.actions), err)
	}

	for _, s := range succs {
		if err = core.CheckStep(algo, s); err != nil {
			return err
		}
		actions := core.Extend(n.actions, s.Action)
		cost, err := r.problem.CostOfActions(actions)
		if err != nil {
			return fmt.Errorf("%s: cost of %d actions: %w", algo, len(actions), err)
		}

		// dominated: an explored record for this state is at least as cheap
		if prev, seen := r.explored[s.State]; seen && prev <= cost {
			continue
		}

		priority := cost + r.h(s.State)
		r.pq.Push(nodeItem[S, A]{state: s.State, actions: actions, cost: cost}, priority)
		r.tr.Pushed(len(actions), cost, priority, r.pq.Len())
		r.explored[s.State] = cost
	}

	return nil
}

// record keeps the lowest cost seen for state.
func (r *runner[S, A]) record(state S, cost float64) {
	if prev, seen := r.explored[state]; !seen || cost < prev {
		r.explored[state] = cost
	}
}

// partial returns a failure Result carrying the last popped node.
func (r *runner[S, A]) partial(o core.Outcome) *core.Result[A] {
	return &core.Result[A]{Actions: r.last.actions, Outcome: o, Cost: r.last.cost}
}
