package cli

import "errors"

// Sentinel errors for command input.
var (
	// ErrUnknownAlgorithm indicates an algorithm name outside Algorithms.
	ErrUnknownAlgorithm = errors.New("cli: unknown algorithm")

	// ErrUnknownFormat indicates an output or log format that is not supported.
	ErrUnknownFormat = errors.New("cli: unknown format")

	// ErrSource indicates that not exactly one problem source was given.
	ErrSource = errors.New("cli: exactly one of --preset, --tiles, --scramble or --graph is required")

	// ErrUnsolvable indicates a board with the wrong permutation parity.
	ErrUnsolvable = errors.New("cli: puzzle is not solvable")

	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("cli: invalid configuration")
)

// Algorithms lists the accepted --algorithm values in report order.
var Algorithms = []string{"dfs", "bfs", "ucs", "astar"}

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// outcomeTimeout replaces the search outcome when the deadline expired.
const outcomeTimeout = "timeout"

// progressEvery is the expansion interval of debug progress logs.
const progressEvery = 10000

func knownAlgorithm(name string) bool {
	for _, a := range Algorithms {
		if a == name {
			return true
		}
	}

	return false
}
