package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/puzzle"
)

// Inspection describes a board without searching it.
type Inspection struct {
	Board      string             `json:"board" yaml:"board"`
	Tiles      []int              `json:"tiles" yaml:"tiles,flow"`
	Goal       bool               `json:"goal" yaml:"goal"`
	Solvable   bool               `json:"solvable" yaml:"solvable"`
	BlankRow   int                `json:"blank_row" yaml:"blank_row"`
	BlankCol   int                `json:"blank_col" yaml:"blank_col"`
	LegalMoves []string           `json:"legal_moves" yaml:"legal_moves,flow"`
	Heuristics map[string]float64 `json:"heuristics" yaml:"heuristics"`
}

// inspectHeuristics are the heuristics reported by inspect, in print order.
var inspectHeuristics = []string{"h1", "h2", "h3", "h4"}

// Inspect computes the Inspection of s.
func Inspect(s puzzle.State) Inspection {
	row, col := s.Blank()
	in := Inspection{
		Board:      s.String(),
		Tiles:      s.Tiles(),
		Goal:       s.IsGoal(),
		Solvable:   s.Solvable(),
		BlankRow:   row,
		BlankCol:   col,
		Heuristics: make(map[string]float64, len(inspectHeuristics)),
	}
	for _, m := range s.LegalMoves() {
		in.LegalMoves = append(in.LegalMoves, m.String())
	}
	for _, name := range inspectHeuristics {
		// names come from the registry; lookup cannot fail
		h, _ := puzzle.HeuristicByName(name)
		in.Heuristics[name] = h(s)
	}

	return in
}

func newInspectCommand(a *app) *cobra.Command {
	var (
		src    puzzleSource
		output string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show legal moves, solvability and heuristic values of a board",
		Long: `Show legal moves, solvability and heuristic values of a board.

Examples:
  lvsearch inspect --preset 1
  lvsearch inspect --tiles "1 2 3 4 5 6 7 8 9 10 11 12 13 15 0 14" --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				output = a.cfg.Search.Output
			}
			if err := checkFormat(output); err != nil {
				return err
			}
			s, _, err := src.resolve()
			if err != nil {
				return err
			}
			in := Inspect(s)
			a.logger.Debug("board inspected", "board", in.Board, "solvable", in.Solvable)

			return writeOutput(cmd.OutOrStdout(), output, in, func(w io.Writer) error {
				return writeInspectionText(w, in)
			})
		},
	}
	src.bind(cmd)
	cmd.Flags().StringVar(&output, "output", formatText, "Output format: text, json, yaml")

	return cmd
}

func writeInspectionText(w io.Writer, in Inspection) error {
	if _, err := fmt.Fprintf(w, "board:       %s\ngoal:        %t\nsolvable:    %t\nblank:       (%d,%d)\nlegal moves: %v\n",
		in.Board, in.Goal, in.Solvable, in.BlankRow, in.BlankCol, in.LegalMoves); err != nil {
		return err
	}
	for _, name := range inspectHeuristics {
		if _, err := fmt.Fprintf(w, "%-12s %g\n", name+":", in.Heuristics[name]); err != nil {
			return err
		}
	}

	return nil
}
