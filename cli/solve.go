package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/graphproblem"
)

// searchFlags are the per-search flags shared by solve.
type searchFlags struct {
	algorithm     string
	heuristic     string
	maxExpansions int
	timeout       time.Duration
	output        string
}

func (f *searchFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.algorithm, "algorithm", "astar", "Algorithm: dfs, bfs, ucs, astar")
	fl.StringVar(&f.heuristic, "heuristic", "h3", "A* heuristic for puzzles: null, h1..h4, misplaced, euclidean, manhattan, rowcol")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "Stop after this many expansions (0 = no limit)")
	fl.DurationVar(&f.timeout, "timeout", 0, "Stop after this long (0 = no limit)")
	fl.StringVar(&f.output, "output", formatText, "Output format: text, json, yaml")
}

func newSolveCommand(a *app) *cobra.Command {
	var (
		src   puzzleSource
		sf    searchFlags
		graph string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for a solution to one puzzle or graph",
		Long: `Search for a path from the start to a goal and print the result.

The problem is chosen by exactly one of --preset, --tiles, --scramble or --graph.
Boards with the wrong permutation parity are rejected unless --force is given.

Examples:
  lvsearch solve --preset 4
  lvsearch solve --tiles "5,1,3,4/_,2,6,7/8,9,10,11/12,13,14,15" --algorithm bfs
  lvsearch solve --scramble 30 --seed 9 --heuristic h1 --output yaml
  lvsearch solve --graph roads.yaml --algorithm ucs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.searchSettings(cmd, &sf)
			if err != nil {
				return err
			}
			run := searchRun{
				Algorithm:     settings.Algorithm,
				Heuristic:     settings.Heuristic,
				MaxExpansions: settings.MaxExpansions,
				Timeout:       settings.Timeout,
			}

			var rep Report
			if graph != "" {
				if src.count() != 0 {
					return ErrSource
				}
				rep, err = a.solveGraph(cmd, run, graph)
			} else {
				rep, err = a.solvePuzzle(cmd, run, &src, force)
			}
			if err != nil {
				return err
			}

			a.logger.Info("search finished",
				"problem", rep.Problem,
				"run", rep.label(),
				"outcome", rep.Outcome,
				"length", rep.Length,
				"expanded", rep.Expanded,
			)

			return writeOutput(cmd.OutOrStdout(), settings.Output, rep, func(w io.Writer) error {
				return writeReportText(w, rep)
			})
		},
	}
	src.bind(cmd)
	sf.bind(cmd)
	cmd.Flags().StringVar(&graph, "graph", "", "YAML graph file to search instead of a puzzle")
	cmd.Flags().BoolVar(&force, "force", false, "Search unsolvable boards anyway")

	return cmd
}

func (a *app) solvePuzzle(cmd *cobra.Command, run searchRun, src *puzzleSource, force bool) (Report, error) {
	start, name, err := src.resolve()
	if err != nil {
		return Report{}, err
	}
	if !start.Solvable() {
		if !force {
			return Report{}, fmt.Errorf("%w: %s", ErrUnsolvable, start)
		}
		a.logger.Warn("searching an unsolvable board", "board", start.String())
	}

	return runPuzzle(cmd.Context(), a.logger, run, name, start)
}

func (a *app) solveGraph(cmd *cobra.Command, run searchRun, path string) (Report, error) {
	g, err := graphproblem.Load(path)
	if err != nil {
		return Report{}, err
	}
	a.logger.Debug("graph loaded", "path", path, "vertices", len(g.Vertices()), "edges", len(g.Edges()))

	return runGraph(cmd.Context(), a.logger, run, path, g)
}
