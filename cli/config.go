package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/puzzle"
)

// Config is the YAML configuration of the CLI.
//
//	log:
//	  level: debug
//	  format: json
//	search:
//	  algorithm: astar
//	  heuristic: h3
//	  max_expansions: 1000000
//	  timeout: 30s
//	  output: text
//	compare:
//	  algorithms: [bfs, ucs, astar]
//	  heuristics: [h1, h3]
//	  jobs: 4
//	  max_expansions: 200000
//	  timeout: 10s
//	  metrics_file: compare.prom
//	  puzzles:
//	    - {name: easy, tiles: "1,2,3,4/5,6,7,8/9,10,11,12/13,_,14,15"}
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Search  SearchConfig  `yaml:"search"`
	Compare CompareConfig `yaml:"compare"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SearchConfig holds the settings of a single search.
type SearchConfig struct {
	Algorithm     string        `yaml:"algorithm"`
	Heuristic     string        `yaml:"heuristic"`
	MaxExpansions int           `yaml:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout"`
	Output        string        `yaml:"output"`
}

// CompareConfig holds the settings of the compare command.
type CompareConfig struct {
	Algorithms    []string      `yaml:"algorithms"`
	Heuristics    []string      `yaml:"heuristics"`
	Jobs          int           `yaml:"jobs"`
	MaxExpansions int           `yaml:"max_expansions"`
	Timeout       time.Duration `yaml:"timeout"`
	MetricsFile   string        `yaml:"metrics_file"`
	Puzzles       []NamedPuzzle `yaml:"puzzles"`
}

// NamedPuzzle is a board listed in the configuration, in puzzle.Parse syntax.
type NamedPuzzle struct {
	Name  string `yaml:"name"`
	Tiles string `yaml:"tiles"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "auto"},
		Search: SearchConfig{
			Algorithm: "astar",
			Heuristic: "h3",
			Output:    formatText,
		},
		Compare: CompareConfig{
			Algorithms:    append([]string(nil), Algorithms...),
			Heuristics:    []string{"h1", "h2", "h3", "h4"},
			Jobs:          4,
			MaxExpansions: 200000,
			Timeout:       30 * time.Second,
		},
	}
}

// LoadConfig reads path over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cli: failed to read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cli: failed to parse config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field that has a closed set of values or a range.
func (c Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "auto", formatText, formatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrUnknownFormat, c.Log.Format)
	}
	if err := c.Search.validate(); err != nil {
		return err
	}

	return c.Compare.validate()
}

func (s SearchConfig) validate() error {
	if !knownAlgorithm(s.Algorithm) {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s.Algorithm)
	}
	if _, err := puzzle.HeuristicByName(s.Heuristic); err != nil {
		return err
	}
	if s.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions cannot be negative (%d)", ErrInvalidConfig, s.MaxExpansions)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative (%s)", ErrInvalidConfig, s.Timeout)
	}

	return checkFormat(s.Output)
}

func (c CompareConfig) validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: compare needs at least one algorithm", ErrInvalidConfig)
	}
	for _, a := range c.Algorithms {
		if !knownAlgorithm(a) {
			return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a)
		}
	}
	for _, h := range c.Heuristics {
		if _, err := puzzle.HeuristicByName(h); err != nil {
			return err
		}
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1 (%d)", ErrInvalidConfig, c.Jobs)
	}
	if c.MaxExpansions < 0 || c.Timeout < 0 {
		return fmt.Errorf("%w: compare limits cannot be negative", ErrInvalidConfig)
	}
	for i, p := range c.Puzzles {
		if _, err := puzzle.Parse(p.Tiles); err != nil {
			return fmt.Errorf("cli: compare puzzle %d (%s): %w", i, p.Name, err)
		}
	}

	return nil
}
