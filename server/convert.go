package server

import "github.com/brensch/snekmax/game"

// ToGameState converts a Battlesnake API request to an engine snapshot.
// The request's "you" is added to the snakes when the board omits it.
func ToGameState(req *GameRequest) *game.GameState {
	state := boardState(req)
	if state.You() == nil && len(req.You.Body) > 0 {
		state.Snakes = append(state.Snakes, toSnake(req.You))
	}
	return state
}

// boardState converts only what is on the board. At game end an
// eliminated "you" is absent from it.
func boardState(req *GameRequest) *game.GameState {
	state := &game.GameState{
		Width:  int32(req.Board.Width),
		Height: int32(req.Board.Height),
		YouId:  req.You.ID,
		Turn:   int32(req.Turn),
	}

	state.Food = make([]game.Point, len(req.Board.Food))
	for i, f := range req.Board.Food {
		state.Food[i] = toPoint(f)
	}

	state.Snakes = make([]game.Snake, 0, len(req.Board.Snakes)+1)
	for _, s := range req.Board.Snakes {
		state.Snakes = append(state.Snakes, toSnake(s))
	}
	return state
}

func toSnake(s Battlesnake) game.Snake {
	out := game.Snake{
		Id:     s.ID,
		Health: int32(s.Health),
		Length: int32(s.Length),
		Body:   make([]game.Point, len(s.Body)),
	}
	for j, b := range s.Body {
		out.Body[j] = toPoint(b)
	}
	if out.Length <= 0 {
		out.Length = int32(len(out.Body))
	}
	return out
}

func toPoint(c Coord) game.Point {
	return game.Point{X: int32(c.X), Y: int32(c.Y)}
}
