package astar_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/astar"
	"github.com/katalvlaran/lvsearch/puzzle"
)

// ExampleAStar solves a two-move board with the Manhattan heuristic.
func ExampleAStar() {
	start, err := puzzle.Parse("1,2,3,4/5,6,7,8/9,10,_,12/13,14,11,15")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := astar.AStar[puzzle.State, puzzle.Move](puzzle.NewProblem(start), puzzle.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Actions, res.Cost)
	// Output:
	// [down right] 2
}
