package ucs

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/frontier"
)

// UCS computes a lowest-cost action path from p.Start() to a goal state.
//
// Returns:
//
//   - res: Found/Solved with the optimal path, or Exhausted with the last
//     accepted action list when no goal is reachable.
//   - err: core.ErrNilProblem / core.ErrOptionViolation for invalid input,
//     or an error raised while searching (returned with the partial res).
//
// Complexity:
//
//   - Time:  O(E log V) over the part of the state space explored.
//   - Space: O(V + E)
func UCS[S comparable, A any](p core.Problem[S, A], opts ...core.Option) (*core.Result[A], error) {
	// 1) Validate inputs
	if p == nil {
		return nil, core.ErrNilProblem
	}
	tr, err := core.NewTracker(algo, opts...)
	if err != nil {
		return nil, err
	}

	// 2) Initialize runner with the best-cost map and the heap
	r := &runner[S, A]{
		problem: p,
		tr:      tr,
		best:    make(map[S]float64),
		pq:      frontier.NewPriorityQueue(stateOf[S, A]),
		last:    nodeItem[S, A]{state: p.Start(), actions: []A{}},
	}
	r.pq.Push(r.last, 0)
	tr.Observe(r.pq.Len())

	// 3) Run main loop
	res, err := r.process()

	return core.Finish(tr, res), err
}

// runner holds the mutable state for a single UCS execution.
type runner[S comparable, A any] struct {
	problem core.Problem[S, A]
	tr      *core.Tracker
	best    map[S]float64 // state → lowest accepted cost
	pq      *frontier.PriorityQueue[nodeItem[S, A], S]
	last    nodeItem[S, A] // most recently accepted node
}

// process is the core loop. It repeatedly pops the cheapest node, accepts
// it if it improves on the recorded cost for its state, tests it and relaxes
// its successors.
func (r *runner[S, A]) process() (*core.Result[A], error) {
	for !r.pq.Empty() {
		if err := r.tr.Check(); err != nil {
			return r.partial(core.Exhausted), err
		}

		// 1) Pop the cheapest node
		n, _, _ := r.pq.Pop()

		// 2) Skip stale entries: state already accepted at a lower-or-equal cost
		if prev, seen := r.best[n.state]; seen && n.cost >= prev {
			continue
		}

		// 3) Accept: record the cost, then goal test
		r.best[n.state] = n.cost
		r.last = n
		if r.problem.IsGoal(n.state) {
			return &core.Result[A]{Actions: n.actions, Found: true, Outcome: core.Solved, Cost: n.cost}, nil
		}

		// 4) Relax successors
		if r.tr.LimitReached() {
			return r.partial(core.LimitReached), fmt.Errorf("%s: %w", algo, core.ErrExpansionLimit)
		}
		if err := r.relax(n); err != nil {
			return r.partial(core.Exhausted), err
		}
	}

	return r.partial(core.Exhausted), nil
}

// relax expands n and offers each successor to the frontier with its
// cumulative cost. Update keeps at most one improving entry per state.
func (r *runner[S, A]) relax(n nodeItem[S, A]) error {
	if err := r.tr.Expand(len(n.actions), n.cost, r.pq.Len()); err != nil {
		return err
	}
	succs, err := r.problem.Successors(n.state)
	if err != nil {
		return fmt.Errorf("%s: successors at cost %v: %w", algo, n.cost, err)
	}

	for _, s := range succs {
		if err = core.CheckStep(algo, s); err != nil {
			return err
		}
		next := nodeItem[S, A]{
			state:   s.State,
			actions: core.Extend(n.actions, s.Action),
			cost:    n.cost + s.Cost,
		}
		if r.pq.Update(next, next.cost) {
			r.tr.Pushed(len(next.actions), next.cost, next.cost, r.pq.Len())
		}
	}

	return nil
}

// partial returns a failure Result carrying the last accepted node.
func (r *runner[S, A]) partial(o core.Outcome) *core.Result[A] {
	return &core.Result[A]{Actions: r.last.actions, Outcome: o, Cost: r.last.cost}
}
