package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// State is an immutable fifteen-puzzle configuration.
//
// cells holds the board in row-major order; blank caches the index of the 0
// cell. Because blank is derived from cells, two States are == exactly when
// their grids match cell for cell. The zero State is not a valid board; build
// States with NewState, Parse or Goal.
type State struct {
	cells [Cells]uint8
	blank uint8
}

// goalState is the solved board: 1..15 row-major, blank bottom-right.
var goalState = func() State {
	var s State
	for i := 0; i < Cells-1; i++ {
		s.cells[i] = uint8(i + 1)
	}
	s.cells[Cells-1] = Blank
	s.blank = Cells - 1

	return s
}()

// Goal returns the solved state.
func Goal() State { return goalState }

// NewState builds a State from 16 numbers listed row by row.
// Returns ErrInvalidState unless tiles is a permutation of 0..15.
// Complexity: O(16).
func NewState(tiles []int) (State, error) {
	var s State
	if len(tiles) != Cells {
		return s, fmt.Errorf("%w: want %d tiles, got %d", ErrInvalidState, Cells, len(tiles))
	}
	var seen [Cells]bool
	for i, v := range tiles {
		if v < 0 || v >= Cells {
			return State{}, fmt.Errorf("%w: tile %d at index %d out of range 0..%d", ErrInvalidState, v, i, Cells-1)
		}
		if seen[v] {
			return State{}, fmt.Errorf("%w: tile %d repeated at index %d", ErrInvalidState, v, i)
		}
		seen[v] = true
		s.cells[i] = uint8(v)
		if v == Blank {
			s.blank = uint8(i)
		}
	}

	return s, nil
}

// MustState is like NewState but panics on invalid input.
// Intended for literals known to be valid.
func MustState(tiles []int) State {
	s, err := NewState(tiles)
	if err != nil {
		panic(err)
	}

	return s
}

// Parse reads a board written as 16 numbers separated by commas, spaces or
// slashes; "_" may stand for the blank. It accepts the output of String.
func Parse(text string) (State, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t' || r == '\n'
	})
	tiles := make([]int, 0, Cells)
	for _, f := range fields {
		if f == "_" {
			tiles = append(tiles, Blank)
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return State{}, fmt.Errorf("%w: bad tile %q", ErrInvalidState, f)
		}
		tiles = append(tiles, v)
	}

	return NewState(tiles)
}

// index maps (row,col) to a row-major index.
func index(row, col int) int { return row*Side + col }

// coordinate converts a row-major index back to (row,col).
func coordinate(idx int) (row, col int) { return idx / Side, idx % Side }

// inBounds reports whether (row,col) lies on the board.
func inBounds(row, col int) bool {
	return row >= 0 && row < Side && col >= 0 && col < Side
}

// goalCell returns the cell tile v occupies in the goal state.
func goalCell(v int) (row, col int) {
	if v == Blank {
		return Side - 1, Side - 1
	}

	return coordinate(v - 1)
}

// At returns the tile at (row,col). It panics if the cell is off the board.
func (s State) At(row, col int) int {
	if !inBounds(row, col) {
		panic(fmt.Sprintf("puzzle: cell (%d,%d) out of bounds", row, col))
	}

	return int(s.cells[index(row, col)])
}

// Blank returns the row and column of the blank cell.
func (s State) Blank() (row, col int) { return coordinate(int(s.blank)) }

// Tiles returns a copy of the board in row-major order.
func (s State) Tiles() []int {
	out := make([]int, Cells)
	for i, v := range s.cells {
		out[i] = int(v)
	}

	return out
}

// IsGoal reports whether s is the solved board.
func (s State) IsGoal() bool { return s == goalState }

// LegalMoves returns the moves that keep the blank on the board,
// in the order Up, Down, Left, Right.
func (s State) LegalMoves() []Move {
	row, col := s.Blank()
	moves := make([]Move, 0, len(AllMoves))
	for _, m := range AllMoves {
		d := moveOffsets[m]
		if inBounds(row+d[0], col+d[1]) {
			moves = append(moves, m)
		}
	}

	return moves
}

// Result returns the state reached by sliding the blank in direction m.
// s itself is unchanged. Off-board moves return a *MoveError.
func (s State) Result(m Move) (State, error) {
	if !m.Valid() {
		return State{}, fmt.Errorf("%w: %d", ErrBadMove, uint8(m))
	}
	row, col := s.Blank()
	d := moveOffsets[m]
	nr, nc := row+d[0], col+d[1]
	if !inBounds(nr, nc) {
		return State{}, &MoveError{Move: m, Row: row, Col: col}
	}

	// s is a value copy; swapping its cells does not touch the caller's state
	target := index(nr, nc)
	s.cells[s.blank], s.cells[target] = s.cells[target], s.cells[s.blank]
	s.blank = uint8(target)

	return s, nil
}

// Apply replays moves from s and returns the final state.
// It stops at the first illegal move, reporting its position in the list.
func Apply(s State, moves []Move) (State, error) {
	var err error
	for i, m := range moves {
		if s, err = s.Result(m); err != nil {
			return State{}, fmt.Errorf("puzzle: move %d: %w", i, err)
		}
	}

	return s, nil
}

// Solvable reports whether the goal can be reached from s.
//
// For an even board width, a state is solvable iff the number of inversions
// among tiles 1..15 plus the blank's row counted from the bottom (1-based)
// is odd.
func (s State) Solvable() bool {
	inversions := 0
	for i := 0; i < Cells; i++ {
		if s.cells[i] == Blank {
			continue
		}
		for j := i + 1; j < Cells; j++ {
			if s.cells[j] != Blank && s.cells[j] < s.cells[i] {
				inversions++
			}
		}
	}
	row, _ := s.Blank()
	fromBottom := Side - row

	return (inversions+fromBottom)%2 == 1
}

// String renders the board on one line, rows separated by "/" and the blank
// as "_", e.g. "1,2,3,4/5,6,7,8/9,10,11,12/13,14,15,_".
func (s State) String() string {
	var b strings.Builder
	for i, v := range s.cells {
		switch {
		case i == 0:
		case i%Side == 0:
			b.WriteByte('/')
		default:
			b.WriteByte(',')
		}
		if v == Blank {
			b.WriteByte('_')
		} else {
			b.WriteString(strconv.Itoa(int(v)))
		}
	}

	return b.String()
}
