package rules

import (
	"math/rand"

	"github.com/brensch/snekmax/game"
)

const (
	DeathCauseSnakeCollision      = "snake-collision"
	DeathCauseSnakeSelfCollision  = "snake-self-collision"
	DeathCauseStarvation          = "starvation"
	DeathCauseHeadToHeadCollision = "head-collision"
	DeathCauseWallCollision       = "wall-collision"
	DeathCauseNoMove              = "no-move"
)

// Elimination records why a snake left the board.
type Elimination struct {
	Id    string
	Cause string
	Turn  int32
}

// Step advances the game with a move for every living snake, following the
// standard ruleset: move, reduce health, feed, spawn food, eliminate.
// Snakes without an entry in moves are eliminated. Eliminated snakes are
// removed from the returned state.
func Step(state *game.GameState, moves map[string]game.Move, rng *rand.Rand, food FoodSettings) (*game.GameState, []Elimination) {
	next := state.Clone()
	next.Turn++

	var out []Elimination
	dead := make(map[string]string)

	// 1. Move
	for i := range next.Snakes {
		s := &next.Snakes[i]
		m, ok := moves[s.Id]
		if !ok || !m.Valid() {
			dead[s.Id] = DeathCauseNoMove
			continue
		}
		newBody := make([]game.Point, 0, len(s.Body)+1)
		newBody = append(newBody, s.Head().Add(m.Delta()))
		newBody = append(newBody, s.Body[:len(s.Body)-1]...)
		s.Body = newBody
		s.Health--
	}

	// 2. Feed
	eaten := make(map[game.Point]bool)
	for i := range next.Snakes {
		s := &next.Snakes[i]
		if _, gone := dead[s.Id]; gone {
			continue
		}
		head := s.Head()
		for _, f := range next.Food {
			if f == head {
				eaten[f] = true
				s.Health = game.MaxHealth
				s.Body = append(s.Body, s.Body[len(s.Body)-1])
				break
			}
		}
		s.Length = int32(len(s.Body))
	}
	if len(eaten) > 0 {
		remaining := next.Food[:0]
		for _, f := range next.Food {
			if !eaten[f] {
				remaining = append(remaining, f)
			}
		}
		next.Food = remaining
	}

	// 3. Eliminate
	for i := range next.Snakes {
		s := &next.Snakes[i]
		if _, gone := dead[s.Id]; gone {
			continue
		}
		head := s.Head()
		switch {
		case s.Health <= 0:
			dead[s.Id] = DeathCauseStarvation
		case !next.InBounds(head):
			dead[s.Id] = DeathCauseWallCollision
		case occupied(s.Body[1:], head):
			dead[s.Id] = DeathCauseSnakeSelfCollision
		}
	}
	// Collisions only count against snakes that survived the checks above.
	gone := make(map[string]bool, len(dead))
	for id := range dead {
		gone[id] = true
	}
	for i := range next.Snakes {
		s := &next.Snakes[i]
		if gone[s.Id] {
			continue
		}
		head := s.Head()
		for j := range next.Snakes {
			other := &next.Snakes[j]
			if i == j || gone[other.Id] {
				continue
			}
			if occupied(other.Body[1:], head) {
				dead[s.Id] = DeathCauseSnakeCollision
				break
			}
			if other.Head() == head && len(s.Body) <= len(other.Body) {
				dead[s.Id] = DeathCauseHeadToHeadCollision
				break
			}
		}
	}

	alive := make([]game.Snake, 0, len(next.Snakes))
	for _, s := range next.Snakes {
		if cause, gone := dead[s.Id]; gone {
			out = append(out, Elimination{Id: s.Id, Cause: cause, Turn: next.Turn})
			continue
		}
		alive = append(alive, s)
	}
	next.Snakes = alive

	// 4. Spawn food on the surviving board
	SpawnFood(next, rng, food)

	return next, out
}

// IsGameOver reports whether at most one snake is left.
func IsGameOver(state *game.GameState) bool {
	return len(state.Snakes) <= 1
}
