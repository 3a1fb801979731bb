// Package puzzle implements the fifteen-puzzle as a core.Problem, together
// with the four tile-distance heuristics used by A*.
//
// Board
//
//	A State is a 4×4 grid holding each of 0..15 exactly once, 0 being the
//	blank. The goal is row-major ascending 1..15 with the blank bottom-right:
//
//	    ┌────┬────┬────┬────┐
//	    │  1 │  2 │  3 │  4 │
//	    ├────┼────┼────┼────┤
//	    │  5 │  6 │  7 │  8 │
//	    ├────┼────┼────┼────┤
//	    │  9 │ 10 │ 11 │ 12 │
//	    ├────┼────┼────┼────┤
//	    │ 13 │ 14 │ 15 │    │
//	    └────┴────┴────┴────┘
//
//	States are comparable values: == compares the full grid, and a State can be
//	used directly as a map key. Every move returns a new State.
//
// Moves
//
//	A Move names the direction the blank travels: Up, Down, Left, Right.
//	LegalMoves lists them in that order, omitting moves that would leave the
//	board. Up/Down and Left/Right are mutual inverses.
//
// Heuristics (tile v ∈ 1..15 belongs at row (v-1)/4, column (v-1)%4)
//
//   - MisplacedTiles  (h1): tiles not on their goal cell.
//   - Euclidean       (h2): summed straight-line distance to the goal cell.
//   - Manhattan       (h3): summed |Δrow| + |Δcol|.
//   - OutOfRowColumn  (h4): tiles outside their goal row plus tiles outside their goal column.
//
//	The blank is not a tile and is left out of every sum, which keeps all four
//	admissible for unit-cost moves. All return 0 on the goal state, and
//	h1 <= h4 <= h3, h2 <= h3 hold for every state.
//
// Errors
//
//   - ErrInvalidState      if NewState input is not a permutation of 0..15.
//   - ErrIllegalMove       (via *MoveError) if a move would leave the board.
//   - ErrBadMove           if a move name cannot be parsed.
//   - ErrUnknownHeuristic  if a heuristic name is not registered.
//   - ErrPresetIndex       if a preset index is out of range.
package puzzle
