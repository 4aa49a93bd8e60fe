// Package eval scores a snapshot from the controlled snake's perspective.
package eval

import (
	"fmt"

	"github.com/brensch/snekmax/game"
)

// Weights are the coefficients of the linear evaluation.
type Weights struct {
	Length float64 // per unit of length
	Food   float64 // numerator of the closest-food term
	Danger float64 // per opponent segment adjacent to the head
}

var DefaultWeights = Weights{Length: 1, Food: 2, Danger: -5}

func (w Weights) String() string {
	return fmt.Sprintf("len=%g food=%g danger=%g", w.Length, w.Food, w.Danger)
}

// Evaluate returns
//
//	Length*len(you) + Food/(closestFood+1) + Danger*adjacentOpponentSegments
//
// The food term is zero when the board has no food. A missing controlled
// snake scores zero.
func Evaluate(state *game.GameState, w Weights) float64 {
	you := state.You()
	if you == nil || len(you.Body) == 0 {
		return 0
	}
	head := you.Head()

	score := float64(you.Len()) * w.Length

	if d, ok := ClosestFood(state, head); ok {
		score += w.Food / float64(d+1)
	}

	score += float64(AdjacentOpponentSegments(state, you.Id, head)) * w.Danger
	return score
}

// ClosestFood returns the smallest Manhattan distance from p to any food.
func ClosestFood(state *game.GameState, p game.Point) (int32, bool) {
	if len(state.Food) == 0 {
		return 0, false
	}
	best := p.Manhattan(state.Food[0])
	for _, f := range state.Food[1:] {
		best = min(best, p.Manhattan(f))
	}
	return best, true
}

// AdjacentOpponentSegments counts segments of snakes other than youId at
// Manhattan distance exactly 1 from p. Stacked segments count once each.
func AdjacentOpponentSegments(state *game.GameState, youId string, p game.Point) int {
	n := 0
	for i := range state.Snakes {
		s := &state.Snakes[i]
		if s.Id == youId {
			continue
		}
		for _, bp := range s.Body {
			if p.Manhattan(bp) == 1 {
				n++
			}
		}
	}
	return n
}
