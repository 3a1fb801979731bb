package puzzle

import (
	"errors"
	"fmt"
)

const (
	// Side is the board width and height.
	Side = 4
	// Cells is the number of cells on the board.
	Cells = Side * Side
	// Blank is the value of the empty cell.
	Blank = 0
)

// Sentinel errors for puzzle operations.
var (
	// ErrInvalidState indicates NewState input is not a permutation of 0..15.
	ErrInvalidState = errors.New("puzzle: invalid state")

	// ErrIllegalMove indicates a move that would take the blank off the board.
	ErrIllegalMove = errors.New("puzzle: illegal move")

	// ErrBadMove indicates an unknown move name or value.
	ErrBadMove = errors.New("puzzle: unknown move")

	// ErrUnknownHeuristic indicates a heuristic name that is not registered.
	ErrUnknownHeuristic = errors.New("puzzle: unknown heuristic")

	// ErrPresetIndex indicates a preset index out of range.
	ErrPresetIndex = errors.New("puzzle: preset index out of range")
)

// Move is a direction the blank can travel.
type Move uint8

const (
	// Up moves the blank one row up.
	Up Move = iota
	// Down moves the blank one row down.
	Down
	// Left moves the blank one column left.
	Left
	// Right moves the blank one column right.
	Right
)

// moveOffsets holds (Δrow, Δcol) per Move, indexed by the Move value.
var moveOffsets = [...][2]int{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

var moveNames = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}

// AllMoves lists every move in the order LegalMoves reports them.
var AllMoves = [...]Move{Up, Down, Left, Right}

// String returns the lower-case move name.
func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}

	return fmt.Sprintf("move(%d)", uint8(m))
}

// Valid reports whether m is one of the four directions.
func (m Move) Valid() bool { return int(m) < len(moveNames) }

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// ParseMove converts "up", "down", "left" or "right" into a Move.
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if name == s {
			return Move(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadMove, s)
}

// MarshalText encodes the move by name, so JSON and YAML output stay readable.
func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadMove, uint8(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText decodes a move name.
func (m *Move) UnmarshalText(b []byte) error {
	mv, err := ParseMove(string(b))
	if err != nil {
		return err
	}
	*m = mv

	return nil
}

// MoveError reports a move that is illegal from a given blank position.
// It matches ErrIllegalMove with errors.Is.
type MoveError struct {
	Move     Move
	Row, Col int // blank position the move was attempted from
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("puzzle: illegal move %s from blank at (%d,%d)", e.Move, e.Row, e.Col)
}

// Unwrap lets errors.Is(err, ErrIllegalMove) succeed.
func (e *MoveError) Unwrap() error { return ErrIllegalMove }
