package core

import (
	"context"
	"fmt"
)

// Event describes one frontier operation reported to the OnExpand and OnPush hooks.
type Event struct {
	// Algorithm is the short name of the running search ("dfs", "bfs", "ucs", "astar").
	Algorithm string

	// Depth is the number of actions on the node's path.
	Depth int

	// Cost is the node's cumulative path cost.
	Cost float64

	// Priority is the frontier key (cost, or cost+heuristic); zero for stack and queue.
	Priority float64

	// Expanded is the number of states expanded so far, including this one for OnExpand.
	Expanded int

	// Frontier is the frontier size at the time of the event.
	Frontier int
}

// Option configures a search invocation via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds the parameters shared by every search algorithm.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop iteration.
	Ctx context.Context

	// MaxExpansions, if > 0, stops the search after that many expansions.
	// A value of 0 disables the limit.
	MaxExpansions int

	// OnExpand is called right before a state's successors are generated.
	// Returning an error aborts the search with that error.
	OnExpand func(ev Event) error

	// OnPush is called after a node is added to the frontier.
	OnPush func(ev Event)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no expansion
// limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(Event) error { return nil },
		OnPush:        func(Event) {},
	}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  stop after n expansions (ErrExpansionLimit)
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook called before each expansion.
func WithOnExpand(fn func(ev Event) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a hook called after each frontier insertion.
func WithOnPush(fn func(ev Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// BuildOptions applies opts over DefaultOptions and returns the first recorded violation.
func BuildOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
