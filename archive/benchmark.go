package archive

import (
	"fmt"
	"log/slog"

	"github.com/brensch/snekmax/game"
	"github.com/brensch/snekmax/search"
)

// Result is the agreement of the engine with archived policies.
type Result struct {
	Files     int
	Rows      int
	Positions int // (turn, snake) pairs with a known policy
	Agreed    int
	Fallbacks int
	Skipped   int // positions the engine rejected as malformed
}

func (r Result) Rate() float64 {
	if r.Positions == 0 {
		return 0
	}
	return float64(r.Agreed) / float64(r.Positions)
}

func (r Result) String() string {
	return fmt.Sprintf("files=%d rows=%d positions=%d agreed=%d (%.1f%%) fallbacks=%d skipped=%d",
		r.Files, r.Rows, r.Positions, r.Agreed, 100*r.Rate(), r.Fallbacks, r.Skipped)
}

// Benchmark decides every archived position whose snake is alive with a
// known policy and counts how often the engine picked the same move.
// limit caps the number of positions; 0 means no cap.
func Benchmark(engine *search.Engine, paths []string, limit int, log *slog.Logger) (Result, error) {
	if log == nil {
		log = slog.Default()
	}
	var res Result
	errLimit := fmt.Errorf("limit reached")

	for _, path := range paths {
		err := ReadFile(path, func(row TurnRow) error {
			res.Rows++
			for _, s := range row.Snakes {
				if !s.Alive || s.Policy < 0 {
					continue
				}
				if limit > 0 && res.Positions >= limit {
					return errLimit
				}
				d, err := engine.Decide(row.State(s.ID))
				if err != nil {
					res.Skipped++
					log.Debug("skipping position", slog.String("game", row.GameID), slog.Int("turn", int(row.Turn)), slog.String("snake", s.ID), slog.Any("err", err))
					continue
				}
				res.Positions++
				if d.Fallback {
					res.Fallbacks++
				}
				if d.Move == game.Move(s.Policy) {
					res.Agreed++
				}
			}
			return nil
		})
		res.Files++
		if err == errLimit {
			break
		}
		if err != nil {
			return res, err
		}
		log.Info("benchmarked file", slog.String("path", path), slog.Int("positions", res.Positions), slog.Float64("rate", res.Rate()))
	}
	return res, nil
}
