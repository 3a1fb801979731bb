package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the state shared by all commands of one process.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    Config
	logger *slog.Logger
}

// NewRootCommand builds the lvsearch command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: DefaultConfig(), logger: slog.Default()}

	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "State-space search on the fifteen-puzzle and on YAML graphs",
		Long: `lvsearch runs depth-first, breadth-first, uniform-cost and A* search.

Examples:
  lvsearch solve --preset 3 --algorithm astar --heuristic h3
  lvsearch solve --graph roads.yaml --algorithm ucs --output json
  lvsearch compare --jobs 4 --metrics-file compare.prom
  lvsearch inspect --scramble 20 --seed 7`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config: info)")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: auto, text, json (default from config: auto)")

	root.AddCommand(newSolveCommand(a), newCompareCommand(a), newInspectCommand(a))

	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads the config file and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		cfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.cfg.Log.Level, a.cfg.Log.Format)
	if err != nil {
		return err
	}
	a.logger = logger
	if a.configPath != "" {
		a.logger.Debug("configuration loaded", "path", a.configPath)
	}

	return nil
}

// searchSettings applies explicitly set flags over the configured search settings.
func (a *app) searchSettings(cmd *cobra.Command, f *searchFlags) (SearchConfig, error) {
	s := a.cfg.Search
	flags := cmd.Flags()
	if flags.Changed("algorithm") {
		s.Algorithm = f.algorithm
	}
	if flags.Changed("heuristic") {
		s.Heuristic = f.heuristic
	}
	if flags.Changed("max-expansions") {
		s.MaxExpansions = f.maxExpansions
	}
	if flags.Changed("timeout") {
		s.Timeout = f.timeout
	}
	if flags.Changed("output") {
		s.Output = f.output
	}

	return s, s.validate()
}
