package game

import (
	"errors"
	"fmt"
)

var (
	ErrBadDimensions = errors.New("board dimensions must be positive")
	ErrNoYou         = errors.New("controlled snake not found")
	ErrEmptyBody     = errors.New("snake has an empty body")
	ErrBadHealth     = errors.New("health out of range")
	ErrDuplicateFood = errors.New("duplicate food")
)

// MaxHealth is the health cap for every snake.
const MaxHealth = 100

// Validate rejects snapshots the engine cannot reason about. Positions of
// opponents are not bounds checked; snakes off the board simply never
// collide with anything reachable.
func (s *GameState) Validate() error {
	if s == nil {
		return errors.New("nil game state")
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, s.Width, s.Height)
	}

	you := s.You()
	if you == nil {
		return fmt.Errorf("%w: id %q", ErrNoYou, s.YouId)
	}

	for i := range s.Snakes {
		sn := &s.Snakes[i]
		if len(sn.Body) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyBody, sn.Id)
		}
		if sn.Health < 0 || sn.Health > MaxHealth {
			return fmt.Errorf("%w: %q has %d", ErrBadHealth, sn.Id, sn.Health)
		}
		if sn.Length < 0 {
			return fmt.Errorf("snake %q has negative length %d", sn.Id, sn.Length)
		}
	}

	if !s.InBounds(you.Head()) {
		return fmt.Errorf("controlled head %v is off the board", you.Head())
	}

	seen := make(map[Point]bool, len(s.Food))
	for _, f := range s.Food {
		if seen[f] {
			return fmt.Errorf("%w at (%d,%d)", ErrDuplicateFood, f.X, f.Y)
		}
		seen[f] = true
	}
	return nil
}
