package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvsearch/core"
)

// Problem is the fifteen-puzzle search problem rooted at a start state.
// Every move costs 1.
type Problem struct {
	start State
}

var _ core.Problem[State, Move] = (*Problem)(nil)

// NewProblem returns a Problem starting from start.
func NewProblem(start State) *Problem { return &Problem{start: start} }

// Start returns the start state.
func (p *Problem) Start() State { return p.start }

// IsGoal reports whether s is the solved board.
func (p *Problem) IsGoal(s State) bool { return s.IsGoal() }

// Successors returns one unit-cost successor per legal move, in the order
// Up, Down, Left, Right.
func (p *Problem) Successors(s State) ([]core.Successor[State, Move], error) {
	moves := s.LegalMoves()
	out := make([]core.Successor[State, Move], 0, len(moves))
	for _, m := range moves {
		next, err := s.Result(m)
		if err != nil {
			return nil, err
		}
		out = append(out, core.Successor[State, Move]{State: next, Action: m, Cost: 1})
	}

	return out, nil
}

// CostOfActions returns the number of actions. The sequence is assumed to
// be legal from Start; it is not replayed.
func (p *Problem) CostOfActions(actions []Move) (float64, error) {
	return float64(len(actions)), nil
}

// Presets are the stock puzzles shipped with the solver, row-major.
// Indices 1 and 5 are not solvable (odd permutation parity); they exercise
// the failure paths of the solvers.
var Presets = [][]int{
	{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0},
	{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 0, 14},
	{4, 3, 2, 7, 0, 5, 1, 6, 8, 9, 10, 11, 12, 13, 14, 15},
	{5, 1, 3, 4, 0, 2, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{1, 2, 5, 7, 6, 8, 0, 4, 3, 9, 10, 11, 12, 13, 14, 15},
	{0, 3, 1, 6, 8, 2, 7, 5, 4, 9, 10, 11, 12, 13, 14, 15},
}

// Preset returns preset puzzle i.
func Preset(i int) (State, error) {
	if i < 0 || i >= len(Presets) {
		return State{}, fmt.Errorf("%w: %d (have %d)", ErrPresetIndex, i, len(Presets))
	}

	return NewState(Presets[i])
}

// Scramble applies n uniformly random legal moves to the goal state.
// The result is always solvable. rng is the only source of randomness.
func Scramble(rng *rand.Rand, n int) State {
	s := goalState
	for i := 0; i < n; i++ {
		moves := s.LegalMoves()
		// legal moves from a legal state cannot fail
		s, _ = s.Result(moves[rng.Intn(len(moves))])
	}

	return s
}
