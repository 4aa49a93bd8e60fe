package replay

import (
	"fmt"

	"github.com/brensch/snekmax/game"
	"github.com/brensch/snekmax/search"
)

// Standard board size when neither game_info nor the frame carries one.
const defaultBoardSize = 11

// TurnResult compares the engine with what the snake actually played.
type TurnResult struct {
	Turn     int
	Engine   game.Move
	Played   game.Move
	Value    float64
	Fallback bool
}

func (r TurnResult) Agreed() bool {
	return r.Engine == r.Played
}

// Report summarizes a replayed game for one snake.
type Report struct {
	GameID  string
	SnakeID string
	Turns   []TurnResult
}

// Agreed counts turns where the engine chose the played move.
func (r Report) Agreed() int {
	n := 0
	for _, t := range r.Turns {
		if t.Agreed() {
			n++
		}
	}
	return n
}

// Rate is the fraction of compared turns that agreed.
func (r Report) Rate() float64 {
	if len(r.Turns) == 0 {
		return 0
	}
	return float64(r.Agreed()) / float64(len(r.Turns))
}

// ResolveSnake finds a snake by id or display name in the first frame.
func ResolveSnake(g *Game, nameOrID string) (string, error) {
	if len(g.Frames) == 0 {
		return "", fmt.Errorf("game has no frames")
	}
	for _, s := range g.Frames[0].Snakes {
		if s.ID == nameOrID || s.Name == nameOrID {
			return s.ID, nil
		}
	}
	return "", fmt.Errorf("snake %q not in game %s", nameOrID, g.Info.Game.ID)
}

// FrameState converts a frame to a snapshot controlled by snakeID. Only
// living snakes are included. ok is false when snakeID is not alive.
func FrameState(info GameInfo, f Frame, snakeID string) (*game.GameState, bool) {
	state := &game.GameState{
		Width:  defaultBoardSize,
		Height: defaultBoardSize,
		YouId:  snakeID,
		Turn:   int32(f.Turn),
	}
	if info.Game.Width > 0 && info.Game.Height > 0 {
		state.Width, state.Height = int32(info.Game.Width), int32(info.Game.Height)
	}
	if f.Board.Width > 0 && f.Board.Height > 0 {
		state.Width, state.Height = int32(f.Board.Width), int32(f.Board.Height)
	}

	seen := make(map[game.Point]bool, len(f.Food))
	for _, c := range f.Food {
		p := game.Point{X: int32(c.X), Y: int32(c.Y)}
		if !seen[p] {
			seen[p] = true
			state.Food = append(state.Food, p)
		}
	}

	for _, s := range f.Snakes {
		if !s.Alive() {
			continue
		}
		sn := game.Snake{Id: s.ID, Health: int32(s.Health), Length: int32(len(s.Body))}
		sn.Body = make([]game.Point, len(s.Body))
		for i, c := range s.Body {
			sn.Body[i] = game.Point{X: int32(c.X), Y: int32(c.Y)}
		}
		state.Snakes = append(state.Snakes, sn)
	}
	return state, state.You() != nil
}

// playedMove derives the move snakeID made between two frames.
func playedMove(cur, next Frame, snakeID string) game.Move {
	var from, to *SnakeData
	for i := range cur.Snakes {
		if cur.Snakes[i].ID == snakeID {
			from = &cur.Snakes[i]
		}
	}
	for i := range next.Snakes {
		if next.Snakes[i].ID == snakeID {
			to = &next.Snakes[i]
		}
	}
	if from == nil || to == nil || len(from.Body) == 0 || len(to.Body) == 0 {
		return game.NoMove
	}
	h0, h1 := from.Body[0], to.Body[0]
	return game.MoveBetween(game.Point{X: int32(h0.X), Y: int32(h0.Y)}, game.Point{X: int32(h1.X), Y: int32(h1.Y)})
}

// Compare decides every turn where snakeID is alive and has a following
// frame, and records the engine's move next to the played one.
func Compare(engine *search.Engine, g *Game, snakeID string) (Report, error) {
	rep := Report{GameID: g.Info.Game.ID, SnakeID: snakeID}
	for i := 0; i+1 < len(g.Frames); i++ {
		cur, next := g.Frames[i], g.Frames[i+1]
		state, ok := FrameState(g.Info, cur, snakeID)
		if !ok {
			continue
		}
		played := playedMove(cur, next, snakeID)
		if !played.Valid() {
			continue
		}
		d, err := engine.Decide(state)
		if err != nil {
			return rep, fmt.Errorf("turn %d: %w", cur.Turn, err)
		}
		rep.Turns = append(rep.Turns, TurnResult{
			Turn:     cur.Turn,
			Engine:   d.Move,
			Played:   played,
			Value:    d.Value,
			Fallback: d.Fallback,
		})
	}
	return rep, nil
}
