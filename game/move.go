package game

import "fmt"

// Move is one of the four cardinal directions.
// The numeric order is the enumeration order used for tie-breaking.
type Move int8

const (
	MoveUp    Move = 0
	MoveDown  Move = 1
	MoveLeft  Move = 2
	MoveRight Move = 3

	// NoMove is returned by the search when the side to move has no safe move.
	NoMove Move = -1
)

// AllMoves lists the moves in enumeration order.
var AllMoves = [4]Move{MoveUp, MoveDown, MoveLeft, MoveRight}

var moveNames = [4]string{"up", "down", "left", "right"}

var moveDeltas = [4]Point{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

func (m Move) Valid() bool {
	return m >= MoveUp && m <= MoveRight
}

// Delta returns the unit offset of the move. NoMove has a zero delta.
func (m Move) Delta() Point {
	if !m.Valid() {
		return Point{}
	}
	return moveDeltas[m]
}

// Opposite returns the reverse direction.
func (m Move) Opposite() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	case MoveRight:
		return MoveLeft
	}
	return NoMove
}

func (m Move) String() string {
	if !m.Valid() {
		return "none"
	}
	return moveNames[m]
}

// ParseMove converts a wire move name to a Move.
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if name == s {
			return Move(i), nil
		}
	}
	return NoMove, fmt.Errorf("unknown move %q", s)
}

// MoveBetween returns the move that takes from to to, or NoMove when the
// points are not orthogonally adjacent.
func MoveBetween(from, to Point) Move {
	d := Point{X: to.X - from.X, Y: to.Y - from.Y}
	for i, md := range moveDeltas {
		if md == d {
			return Move(i)
		}
	}
	return NoMove
}
