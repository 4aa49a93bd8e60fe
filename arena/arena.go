// Package arena plays local games where every snake is driven by its own
// search engine and the board follows the full simultaneous rules.
package arena

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/brensch/snekmax/game"
	"github.com/brensch/snekmax/rules"
	"github.com/brensch/snekmax/search"
)

// Config describes one game.
type Config struct {
	Width    int32
	Height   int32
	MaxTurns int // 0 means no limit
	Food     rules.FoodSettings
	Seed     int64 // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		Width:    11,
		Height:   11,
		MaxTurns: 500,
		Food:     rules.DefaultFoodSettings,
	}
}

// Player is one seat in the game.
type Player struct {
	Id     string
	Engine *search.Engine
}

// Frame is the board after a turn, with the moves that produced it.
type Frame struct {
	GameID     string
	State      *game.GameState
	Moves      map[string]game.Move
	Eliminated []rules.Elimination
}

// Result summarizes a finished game.
type Result struct {
	GameID       string
	Winner       string // empty on a draw
	Turns        int
	Eliminations []rules.Elimination
}

// Play runs a game to completion, calling onFrame with the start position
// and after every turn. onFrame may be nil.
func Play(ctx context.Context, cfg Config, players []Player, onFrame func(Frame)) (Result, error) {
	if len(players) < 1 || len(players) > 4 {
		return Result{}, fmt.Errorf("need 1 to 4 players, got %d", len(players))
	}
	if cfg.Width < 5 || cfg.Height < 5 {
		return Result{}, fmt.Errorf("board %dx%d is too small", cfg.Width, cfg.Height)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	engines := make(map[string]*search.Engine, len(players))
	ids := make([]string, len(players))
	for i, p := range players {
		if _, dup := engines[p.Id]; dup {
			return Result{}, fmt.Errorf("duplicate player id %q", p.Id)
		}
		engines[p.Id] = p.Engine
		ids[i] = p.Id
	}

	res := Result{GameID: uuid.NewString()}
	state := InitialState(cfg, ids, rng)
	if onFrame != nil {
		onFrame(Frame{GameID: res.GameID, State: state})
	}

	for !over(state, len(players)) {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if cfg.MaxTurns > 0 && res.Turns >= cfg.MaxTurns {
			break
		}

		moves := make(map[string]game.Move, len(state.Snakes))
		for _, s := range state.Snakes {
			view := *state
			view.YouId = s.Id
			d, err := engines[s.Id].Decide(&view)
			if err != nil {
				return res, fmt.Errorf("turn %d snake %s: %w", state.Turn, s.Id, err)
			}
			moves[s.Id] = d.Move
		}

		var elim []rules.Elimination
		state, elim = rules.Step(state, moves, rng, cfg.Food)
		res.Turns++
		res.Eliminations = append(res.Eliminations, elim...)
		if onFrame != nil {
			onFrame(Frame{GameID: res.GameID, State: state, Moves: moves, Eliminated: elim})
		}
	}

	if len(players) > 1 && len(state.Snakes) == 1 {
		res.Winner = state.Snakes[0].Id
	}
	return res, nil
}

// over ends multi-snake games at one survivor and solo games at zero.
func over(state *game.GameState, players int) bool {
	if players == 1 {
		return len(state.Snakes) == 0
	}
	return rules.IsGameOver(state)
}

// InitialState places snakes stacked three deep in the corners, one in
// from each edge, and spawns the minimum food.
func InitialState(cfg Config, ids []string, rng *rand.Rand) *game.GameState {
	w, h := cfg.Width, cfg.Height
	corners := []game.Point{
		{X: 1, Y: 1},
		{X: w - 2, Y: h - 2},
		{X: 1, Y: h - 2},
		{X: w - 2, Y: 1},
	}

	state := &game.GameState{Width: w, Height: h}
	if len(ids) > 0 {
		state.YouId = ids[0]
	}
	for i, id := range ids {
		p := corners[i%len(corners)]
		state.Snakes = append(state.Snakes, game.Snake{
			Id:     id,
			Health: game.MaxHealth,
			Length: 3,
			Body:   []game.Point{p, p, p},
		})
	}

	rules.SpawnFood(state, rng, rules.FoodSettings{MinimumFood: cfg.Food.MinimumFood})
	return state
}
