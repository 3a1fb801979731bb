package puzzle_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/puzzle"
)

// ExampleState_Result slides the blank and shows an illegal move.
func ExampleState_Result() {
	s := puzzle.MustState([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 15})
	fmt.Println(s.LegalMoves())

	next, _ := s.Result(puzzle.Right)
	fmt.Println(next, next.IsGoal())

	_, err := next.Result(puzzle.Right)
	fmt.Println(errors.Is(err, puzzle.ErrIllegalMove))
	// Output:
	// [up left right]
	// 1,2,3,4/5,6,7,8/9,10,11,12/13,14,15,_ true
	// true
}

// ExampleManhattan compares the four heuristics on a stock puzzle.
func ExampleManhattan() {
	s, _ := puzzle.Preset(3)
	fmt.Println(puzzle.MisplacedTiles(s), puzzle.Manhattan(s), puzzle.OutOfRowColumn(s))
	// Output:
	// 13 19 15
}
