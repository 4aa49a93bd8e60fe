// Package search picks a move with a fixed-depth minimax over simulated
// states.
//
// The minimizing layer does not model opponents. It re-applies the
// controlled snake's own safe moves and keeps the worst outcome, so the
// search is a single-agent minimax against itself. Opponents stay static
// throughout.
package search

import (
	"log/slog"
	"math"

	"github.com/brensch/snekmax/eval"
	"github.com/brensch/snekmax/game"
	"github.com/brensch/snekmax/rules"
)

// Stats counts the work done by one search.
type Stats struct {
	Nodes  int // states visited, root included
	Leaves int // states scored by the evaluator
}

// MoveScore is the backed-up value of one root move.
type MoveScore struct {
	Move  game.Move
	Value float64
}

// Engine runs searches with a fixed Config. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	cfg Config
	log *slog.Logger
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return slog.Default()
}

// WithLogger returns a copy of the engine that logs to l.
func (e *Engine) WithLogger(l *slog.Logger) *Engine {
	out := *e
	out.log = l
	return &out
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Minimax searches depth plies from state and returns the best value for
// the side to move along with the move achieving it. The move is
// game.NoMove when depth is 0 or the side to move has no safe move.
func (e *Engine) Minimax(state *game.GameState, depth int, maximizing bool) (float64, game.Move) {
	var stats Stats
	return e.minimax(state, depth, maximizing, &stats, nil)
}

func (e *Engine) minimax(state *game.GameState, depth int, maximizing bool, stats *Stats, root *[]MoveScore) (float64, game.Move) {
	stats.Nodes++

	moves := rules.SafeMoves(state)
	if depth <= 0 || len(moves) == 0 {
		stats.Leaves++
		return eval.Evaluate(state, e.cfg.Weights), game.NoMove
	}

	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	bestMove := game.NoMove

	for _, m := range moves {
		child := rules.Apply(state, m, e.cfg.Body)
		value, _ := e.minimax(child, depth-1, !maximizing, stats, nil)
		if root != nil {
			*root = append(*root, MoveScore{Move: m, Value: value})
		}

		// Strict comparisons keep the first move on ties.
		if maximizing && value > best || !maximizing && value < best {
			best = value
			bestMove = m
		}
	}
	return best, bestMove
}

// Minimax runs a search with DefaultConfig weights and body model.
func Minimax(state *game.GameState, depth int, maximizing bool) (float64, game.Move) {
	return defaultEngine.Minimax(state, depth, maximizing)
}

var defaultEngine = NewEngine(DefaultConfig())
