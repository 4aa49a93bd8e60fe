package search

import (
	"fmt"
	"log/slog"

	"github.com/brensch/snekmax/game"
	"github.com/brensch/snekmax/rules"
)

// Decision is the outcome of one turn.
type Decision struct {
	Move     game.Move
	Value    float64
	Safe     []game.Move
	Scores   []MoveScore // backed-up value of each safe root move
	Fallback bool        // no safe move existed; Move came from FallbackMove
	Stats    Stats
}

// Decide validates the snapshot and searches Config.Depth plies from it.
// The snapshot is never modified. When no safe move exists the decision
// falls back to FallbackMove instead of returning game.NoMove.
func (e *Engine) Decide(state *game.GameState) (Decision, error) {
	if err := state.Validate(); err != nil {
		return Decision{}, fmt.Errorf("invalid snapshot: %w", err)
	}

	d := Decision{Safe: rules.SafeMoves(state)}
	var scores []MoveScore
	d.Value, d.Move = e.minimax(state, e.cfg.Depth, true, &d.Stats, &scores)
	d.Scores = scores

	if !d.Move.Valid() {
		// Depth 0 still has to answer with something on the board.
		if len(d.Safe) > 0 {
			d.Move = d.Safe[0]
		} else {
			d.Move = FallbackMove(state)
			d.Fallback = true
		}
	}

	e.logger().Debug("decided",
		slog.Int("turn", int(state.Turn)),
		slog.String("move", d.Move.String()),
		slog.Float64("value", d.Value),
		slog.Int("safe", len(d.Safe)),
		slog.Int("nodes", d.Stats.Nodes),
		slog.Bool("fallback", d.Fallback),
	)
	return d, nil
}

// FallbackMove picks the first move in enumeration order that keeps the
// head on the board, or game.MoveUp when none does.
func FallbackMove(state *game.GameState) game.Move {
	you := state.You()
	if you == nil || len(you.Body) == 0 {
		return game.MoveUp
	}
	for _, m := range game.AllMoves {
		if state.InBounds(you.Head().Add(m.Delta())) {
			return m
		}
	}
	return game.MoveUp
}

// Start is called when a game begins. No state is kept between turns.
func (e *Engine) Start(state *game.GameState) {
	e.logger().Info("game started",
		slog.String("you", state.YouId),
		slog.Int("turn", int(state.Turn)),
		slog.Int("snakes", len(state.Snakes)),
		slog.String("board", fmt.Sprintf("%dx%d", state.Width, state.Height)),
	)
}

// End is called when a game finishes.
func (e *Engine) End(state *game.GameState) {
	result := "lost"
	if state.You() != nil {
		result = "won"
	} else if len(state.Snakes) == 0 {
		result = "draw"
	}
	e.logger().Info("game over",
		slog.String("you", state.YouId),
		slog.Int("turn", int(state.Turn)),
		slog.String("result", result),
	)
}

// Decide runs the default engine (depth 3) and returns only the move.
func Decide(state *game.GameState) (game.Move, error) {
	d, err := defaultEngine.Decide(state)
	if err != nil {
		return game.NoMove, err
	}
	return d.Move, nil
}
