// Package game defines the snapshot types the decision engine works on.
//
// A GameState is received read-only at the start of a decision. Every
// hypothetical state explored by the search is produced through Clone so
// sibling branches never share slices.
package game

// Point is a board coordinate.
// Coordinates follow Battlesnake conventions: (0,0) is bottom-left.
type Point struct {
	X int32
	Y int32
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |dx| + |dy| between p and q.
func (p Point) Manhattan(q Point) int32 {
	return abs32(p.X-q.X) + abs32(p.Y-q.Y)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Snake is one agent on the board. Body[0] is the head.
//
// Length is tracked separately from len(Body) because the two-segment
// body model keeps at most two segments while the snake keeps growing.
type Snake struct {
	Id     string
	Health int32
	Length int32
	Body   []Point
}

func (s *Snake) Head() Point {
	return s.Body[0]
}

// Len returns the tracked length, falling back to the body length when the
// snapshot did not carry one.
func (s *Snake) Len() int32 {
	if s.Length > 0 {
		return s.Length
	}
	return int32(len(s.Body))
}

// Alive reports whether the snake still has health left.
func (s *Snake) Alive() bool {
	return s.Health > 0
}

// GameState is the complete snapshot needed for a decision.
// YouId selects the controlled snake.
type GameState struct {
	Width  int32
	Height int32
	Snakes []Snake
	Food   []Point
	YouId  string
	Turn   int32
}

// You returns a pointer into Snakes for the controlled snake, or nil.
func (s *GameState) You() *Snake {
	for i := range s.Snakes {
		if s.Snakes[i].Id == s.YouId {
			return &s.Snakes[i]
		}
	}
	return nil
}

// InBounds reports whether p lies on the board.
func (s *GameState) InBounds(p Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Clone performs a deep copy of the game state.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}

	out := &GameState{
		Width:  s.Width,
		Height: s.Height,
		YouId:  s.YouId,
		Turn:   s.Turn,
	}

	if len(s.Food) > 0 {
		out.Food = make([]Point, len(s.Food))
		copy(out.Food, s.Food)
	}

	if len(s.Snakes) > 0 {
		out.Snakes = make([]Snake, len(s.Snakes))
		for i := range s.Snakes {
			src := &s.Snakes[i]
			out.Snakes[i] = Snake{Id: src.Id, Health: src.Health, Length: src.Length}
			if len(src.Body) > 0 {
				out.Snakes[i].Body = make([]Point, len(src.Body))
				copy(out.Snakes[i].Body, src.Body)
			}
		}
	}

	return out
}
