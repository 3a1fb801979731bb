package core

import "fmt"

// Tracker holds the bookkeeping every search loop shares: cancellation checks,
// the expansion counter and limit, the peak frontier size and hook dispatch.
// A Tracker belongs to exactly one search invocation.
type Tracker struct {
	algo        string
	opts        Options
	expanded    int
	maxFrontier int
}

// NewTracker builds the options for algorithm algo and returns a ready Tracker.
func NewTracker(algo string, opts ...Option) (*Tracker, error) {
	o, err := BuildOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Tracker{algo: algo, opts: o}, nil
}

// Algorithm returns the name the tracker reports in events.
func (t *Tracker) Algorithm() string { return t.algo }

// Expanded returns the number of expansions recorded so far.
func (t *Tracker) Expanded() int { return t.expanded }

// MaxFrontier returns the peak frontier size observed.
func (t *Tracker) MaxFrontier() int { return t.maxFrontier }

// Check returns the context error, if any, without blocking.
func (t *Tracker) Check() error {
	select {
	case <-t.opts.Ctx.Done():
		return fmt.Errorf("%s: %w", t.algo, t.opts.Ctx.Err())
	default:
		return nil
	}
}

// Observe records the current frontier size.
func (t *Tracker) Observe(frontier int) {
	if frontier > t.maxFrontier {
		t.maxFrontier = frontier
	}
}

// LimitReached reports whether the next expansion would exceed MaxExpansions.
func (t *Tracker) LimitReached() bool {
	return t.opts.MaxExpansions > 0 && t.expanded >= t.opts.MaxExpansions
}

// Expand counts one expansion and fires OnExpand.
func (t *Tracker) Expand(depth int, cost float64, frontier int) error {
	t.expanded++
	ev := Event{
		Algorithm: t.algo,
		Depth:     depth,
		Cost:      cost,
		Expanded:  t.expanded,
		Frontier:  frontier,
	}
	if err := t.opts.OnExpand(ev); err != nil {
		return fmt.Errorf("%s: OnExpand error at depth %d: %w", t.algo, depth, err)
	}

	return nil
}

// Pushed records a frontier insertion and fires OnPush.
func (t *Tracker) Pushed(depth int, cost, priority float64, frontier int) {
	t.Observe(frontier)
	t.opts.OnPush(Event{
		Algorithm: t.algo,
		Depth:     depth,
		Cost:      cost,
		Priority:  priority,
		Expanded:  t.expanded,
		Frontier:  frontier,
	})
}

// CheckStep validates the step cost of a successor.
func CheckStep[S comparable, A any](algo string, s Successor[S, A]) error {
	if s.Cost <= 0 {
		return fmt.Errorf("%s: %w (got %v)", algo, ErrNonPositiveStepCost, s.Cost)
	}

	return nil
}

// Finish fills the diagnostic fields of res from the tracker and returns it.
func Finish[A any](t *Tracker, res *Result[A]) *Result[A] {
	res.Expanded = t.expanded
	res.MaxFrontier = t.maxFrontier

	return res
}
