package rules

import (
	"fmt"

	"github.com/brensch/snekmax/game"
)

// FoodHealthGain is the health restored by eating during search.
const FoodHealthGain = 25

// BodyModel selects how Apply reshapes the controlled snake's body.
type BodyModel int

const (
	// BodyFullChain shifts the whole body: prepend the new head and drop the
	// tail unless food was eaten.
	BodyFullChain BodyModel = iota
	// BodyTwoSegment keeps only the new head and the previous head.
	BodyTwoSegment
)

func (b BodyModel) String() string {
	switch b {
	case BodyFullChain:
		return "full"
	case BodyTwoSegment:
		return "two-segment"
	}
	return fmt.Sprintf("BodyModel(%d)", int(b))
}

// ParseBodyModel accepts the names produced by String.
func ParseBodyModel(s string) (BodyModel, error) {
	switch s {
	case "full", "full-chain":
		return BodyFullChain, nil
	case "two-segment", "two":
		return BodyTwoSegment, nil
	}
	return 0, fmt.Errorf("unknown body model %q", s)
}

// Apply returns the state after the controlled snake makes move.
// The input is never modified. Enemies are static.
func Apply(state *game.GameState, move game.Move, model BodyModel) *game.GameState {
	newState := state.Clone()
	newState.Turn++

	you := newState.You()
	if you == nil || len(you.Body) == 0 {
		return newState
	}

	head := you.Head()
	newHead := head.Add(move.Delta())
	length := you.Len()

	ateFood := false
	for i, f := range newState.Food {
		if f == newHead {
			ateFood = true
			newState.Food = append(newState.Food[:i], newState.Food[i+1:]...)
			length++
			you.Health = min(game.MaxHealth, you.Health+FoodHealthGain)
			break
		}
	}
	you.Length = length

	if hitsOpponent(newState, you.Id, newHead) {
		you.Health = 0
	}

	switch model {
	case BodyTwoSegment:
		if length > 1 {
			you.Body = []game.Point{newHead, head}
		} else {
			you.Body = []game.Point{newHead}
		}
	default:
		newBody := make([]game.Point, 0, len(you.Body)+1)
		newBody = append(newBody, newHead)
		newBody = append(newBody, you.Body...)
		if !ateFood {
			newBody = newBody[:len(newBody)-1]
		}
		you.Body = newBody
	}

	return newState
}
