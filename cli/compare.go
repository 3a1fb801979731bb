package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/puzzle"
)

// compareTask is one (board, run) pair.
type compareTask struct {
	name  string
	start puzzle.State
	run   searchRun
}

type compareFlags struct {
	algorithms    []string
	heuristics    []string
	jobs          int
	maxExpansions int
	timeout       time.Duration
	metricsFile   string
	output        string
}

func newCompareCommand(a *app) *cobra.Command {
	var f compareFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms over a set of boards and tabulate the results",
		Long: `Run every selected algorithm (A* once per heuristic) on every board and
print one row per run, ordered by board and then by algorithm.

Boards come from compare.puzzles in the config file, or else from the solvable
stock presets. Runs are independent and execute concurrently (--jobs).

Examples:
  lvsearch compare
  lvsearch compare --algorithms bfs,astar --heuristics h1,h3 --max-expansions 50000
  lvsearch compare --config bench.yaml --metrics-file compare.prom --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, output, err := a.compareSettings(cmd, &f)
			if err != nil {
				return err
			}
			tasks, err := a.compareTasks(cc)
			if err != nil {
				return err
			}

			metrics := newSearchMetrics()
			reports := make([]Report, len(tasks))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(cc.Jobs)
			for i, t := range tasks {
				i, t := i, t
				g.Go(func() error {
					rep, err := runPuzzle(ctx, a.logger, t.run, t.name, t.start)
					if err != nil {
						return fmt.Errorf("cli: %s with %s: %w", t.name, t.run.label(), err)
					}
					reports[i] = rep
					metrics.observe(rep)
					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return err
			}
			a.logger.Info("comparison finished", "runs", len(reports), "jobs", cc.Jobs)

			if cc.MetricsFile != "" {
				if err = metrics.writeTextfile(cc.MetricsFile); err != nil {
					return fmt.Errorf("cli: failed to write metrics: %w", err)
				}
				a.logger.Info("metrics written", "path", cc.MetricsFile)
			}

			return writeOutput(cmd.OutOrStdout(), output, reports, func(w io.Writer) error {
				return writeCompareTable(w, reports)
			})
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVar(&f.algorithms, "algorithms", Algorithms, "Algorithms to run")
	fl.StringSliceVar(&f.heuristics, "heuristics", []string{"h1", "h2", "h3", "h4"}, "Heuristics to run A* with")
	fl.IntVar(&f.jobs, "jobs", 4, "Runs executed concurrently")
	fl.IntVar(&f.maxExpansions, "max-expansions", 200000, "Expansion limit per run (0 = no limit)")
	fl.DurationVar(&f.timeout, "timeout", 30*time.Second, "Time limit per run (0 = no limit)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus text metrics to this file")
	fl.StringVar(&f.output, "output", formatText, "Output format: text, json, yaml")

	return cmd
}

// compareSettings applies explicitly set flags over the compare config.
func (a *app) compareSettings(cmd *cobra.Command, f *compareFlags) (CompareConfig, string, error) {
	cc := a.cfg.Compare
	output := a.cfg.Search.Output
	fl := cmd.Flags()
	if fl.Changed("algorithms") {
		cc.Algorithms = f.algorithms
	}
	if fl.Changed("heuristics") {
		cc.Heuristics = f.heuristics
	}
	if fl.Changed("jobs") {
		cc.Jobs = f.jobs
	}
	if fl.Changed("max-expansions") {
		cc.MaxExpansions = f.maxExpansions
	}
	if fl.Changed("timeout") {
		cc.Timeout = f.timeout
	}
	if fl.Changed("metrics-file") {
		cc.MetricsFile = f.metricsFile
	}
	if fl.Changed("output") {
		output = f.output
	}
	if err := cc.validate(); err != nil {
		return cc, output, err
	}

	return cc, output, checkFormat(output)
}

// compareTasks expands boards × algorithms × heuristics into tasks, ordered
// by board, then algorithm, then heuristic.
func (a *app) compareTasks(cc CompareConfig) ([]compareTask, error) {
	type board struct {
		name  string
		start puzzle.State
	}
	var boards []board
	if len(cc.Puzzles) > 0 {
		for i, p := range cc.Puzzles {
			s, err := puzzle.Parse(p.Tiles)
			if err != nil {
				return nil, err
			}
			name := p.Name
			if name == "" {
				name = fmt.Sprintf("puzzle %d", i)
			}
			boards = append(boards, board{name, s})
		}
	} else {
		for i := range puzzle.Presets {
			s, err := puzzle.Preset(i)
			if err != nil {
				return nil, err
			}
			if !s.Solvable() {
				a.logger.Info("skipping unsolvable preset", "preset", i)
				continue
			}
			boards = append(boards, board{fmt.Sprintf("preset %d", i), s})
		}
	}

	var tasks []compareTask
	for _, b := range boards {
		if !b.start.Solvable() {
			a.logger.Warn("board is not solvable; runs will hit their limits", "board", b.name)
		}
		for _, algo := range cc.Algorithms {
			run := searchRun{Algorithm: algo, MaxExpansions: cc.MaxExpansions, Timeout: cc.Timeout}
			if algo != "astar" {
				tasks = append(tasks, compareTask{b.name, b.start, run})
				continue
			}
			for _, h := range cc.Heuristics {
				run.Heuristic = h
				tasks = append(tasks, compareTask{b.name, b.start, run})
			}
		}
	}

	return tasks, nil
}

func writeCompareTable(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROBLEM\tRUN\tOUTCOME\tLENGTH\tEXPANDED\tMAX FRONTIER\tELAPSED")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%.3fms\n",
			r.Problem, r.label(), r.Outcome, r.Length, r.Expanded, r.MaxFrontier, r.ElapsedMS)
	}

	return tw.Flush()
}
