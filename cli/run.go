package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/bfs"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dfs"
	"github.com/katalvlaran/lvsearch/graphproblem"
	"github.com/katalvlaran/lvsearch/puzzle"
	"github.com/katalvlaran/lvsearch/ucs"
)

// searchRun describes one search invocation.
type searchRun struct {
	Algorithm     string
	Heuristic     string // astar only
	MaxExpansions int
	Timeout       time.Duration
}

// label names the run in tables and metrics, e.g. "bfs" or "astar/h3".
func (r searchRun) label() string {
	if r.Algorithm == "astar" {
		return r.Algorithm + "/" + r.Heuristic
	}

	return r.Algorithm
}

// Report is the printable outcome of one search.
type Report struct {
	Problem     string   `json:"problem" yaml:"problem"`
	Algorithm   string   `json:"algorithm" yaml:"algorithm"`
	Heuristic   string   `json:"heuristic,omitempty" yaml:"heuristic,omitempty"`
	Outcome     string   `json:"outcome" yaml:"outcome"`
	Found       bool     `json:"found" yaml:"found"`
	Cost        float64  `json:"cost" yaml:"cost"`
	Length      int      `json:"length" yaml:"length"`
	Actions     []string `json:"actions" yaml:"actions"`
	Expanded    int      `json:"expanded" yaml:"expanded"`
	MaxFrontier int      `json:"max_frontier" yaml:"max_frontier"`
	ElapsedMS   float64  `json:"elapsed_ms" yaml:"elapsed_ms"`
	Error       string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// label mirrors searchRun.label.
func (r Report) label() string {
	if r.Heuristic != "" {
		return r.Algorithm + "/" + r.Heuristic
	}

	return r.Algorithm
}

// runPuzzle searches from start with the run's algorithm and heuristic.
func runPuzzle(ctx context.Context, logger *slog.Logger, run searchRun, name string, start puzzle.State) (Report, error) {
	var h core.Heuristic[puzzle.State]
	if run.Algorithm == "astar" {
		var err error
		if h, err = puzzle.HeuristicByName(run.Heuristic); err != nil {
			return Report{}, err
		}
	} else {
		run.Heuristic = ""
	}

	return execute(ctx, logger, run, name, puzzle.NewProblem(start), h, puzzle.Move.String)
}

// runGraph searches g. Graphs carry no domain heuristic, so A* runs with the
// null heuristic.
func runGraph(ctx context.Context, logger *slog.Logger, run searchRun, name string, g *graphproblem.Graph) (Report, error) {
	run.Heuristic = ""
	if run.Algorithm == "astar" {
		run.Heuristic = "null"
	}

	return execute(ctx, logger, run, name, g, astar.Null[string](), func(id string) string { return id })
}

// execute dispatches to the algorithm and turns its result into a Report.
// Expansion limits and deadlines produce a Report without an error.
func execute[S comparable, A any](
	ctx context.Context,
	logger *slog.Logger,
	run searchRun,
	name string,
	p core.Problem[S, A],
	h core.Heuristic[S],
	actionName func(A) string,
) (Report, error) {
	if run.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, run.Timeout)
		defer cancel()
	}
	opts := []core.Option{core.WithContext(ctx), core.WithMaxExpansions(run.MaxExpansions)}
	if logger.Enabled(ctx, slog.LevelDebug) {
		opts = append(opts, core.WithOnExpand(progressHook(logger, name)))
	}

	var (
		res *core.Result[A]
		err error
	)
	began := time.Now()
	switch run.Algorithm {
	case "dfs":
		res, err = dfs.DFS(p, opts...)
	case "bfs":
		res, err = bfs.BFS(p, opts...)
	case "ucs":
		res, err = ucs.UCS(p, opts...)
	case "astar":
		res, err = astar.AStar(p, h, opts...)
	default:
		return Report{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, run.Algorithm)
	}
	elapsed := time.Since(began)
	if res == nil {
		return Report{}, err
	}

	rep := Report{
		Problem:     name,
		Algorithm:   run.Algorithm,
		Heuristic:   run.Heuristic,
		Outcome:     res.Outcome.String(),
		Found:       res.Found,
		Cost:        res.Cost,
		Length:      res.Len(),
		Actions:     make([]string, 0, res.Len()),
		Expanded:    res.Expanded,
		MaxFrontier: res.MaxFrontier,
		ElapsedMS:   float64(elapsed.Microseconds()) / 1000,
	}
	for _, a := range res.Actions {
		rep.Actions = append(rep.Actions, actionName(a))
	}

	switch {
	case err == nil:
	case errors.Is(err, core.ErrExpansionLimit):
		rep.Error = err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		rep.Outcome = outcomeTimeout
		rep.Error = err.Error()
	default:
		return rep, err
	}
	logger.Debug("search finished",
		"problem", name,
		"run", rep.label(),
		"outcome", rep.Outcome,
		"length", rep.Length,
		"expanded", rep.Expanded,
		"elapsed", elapsed,
	)

	return rep, nil
}

// progressHook logs every progressEvery-th expansion at debug level.
func progressHook(logger *slog.Logger, name string) func(core.Event) error {
	return func(ev core.Event) error {
		if ev.Expanded%progressEvery == 0 {
			logger.Debug("search progress",
				"problem", name,
				"algorithm", ev.Algorithm,
				"expanded", ev.Expanded,
				"depth", ev.Depth,
				"cost", ev.Cost,
				"frontier", ev.Frontier,
			)
		}
		return nil
	}
}
