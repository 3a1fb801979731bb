package cli

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/puzzle"
)

// puzzleSource is the set of flags that choose a board.
type puzzleSource struct {
	preset   int
	tiles    string
	scramble int
	seed     int64
}

func (s *puzzleSource) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&s.preset, "preset", -1, fmt.Sprintf("Stock puzzle index 0..%d", len(puzzle.Presets)-1))
	f.StringVar(&s.tiles, "tiles", "", `Board as 16 numbers row by row, e.g. "1,2,3,4/5,6,7,8/9,10,11,12/13,14,_,15"`)
	f.IntVar(&s.scramble, "scramble", 0, "Start from the goal scrambled by this many random moves")
	f.Int64Var(&s.seed, "seed", 1, "Random seed for --scramble")
}

// count returns how many board sources are set.
func (s *puzzleSource) count() int {
	n := 0
	if s.preset >= 0 {
		n++
	}
	if s.tiles != "" {
		n++
	}
	if s.scramble > 0 {
		n++
	}

	return n
}

// resolve builds the board and a display name for it.
func (s *puzzleSource) resolve() (puzzle.State, string, error) {
	if s.count() != 1 {
		return puzzle.State{}, "", ErrSource
	}
	switch {
	case s.preset >= 0:
		st, err := puzzle.Preset(s.preset)
		return st, fmt.Sprintf("preset %d", s.preset), err
	case s.tiles != "":
		st, err := puzzle.Parse(s.tiles)
		return st, st.String(), err
	default:
		st := puzzle.Scramble(rand.New(rand.NewSource(s.seed)), s.scramble)
		return st, fmt.Sprintf("scramble %d (seed %d)", s.scramble, s.seed), nil
	}
}
