// Package rules implements move legality and state transitions.
//
// SafeMoves and Apply are what the search explores: only the controlled
// snake moves and opponents stay where they are. Step is the full
// simultaneous transition used to play local games.
package rules

import "github.com/brensch/snekmax/game"

// SafeMoves returns the moves for YouId that neither reverse into the neck,
// leave the board, hit the snake's own body nor hit any segment of another
// snake. The result follows game.AllMoves order. A missing snake has no
// safe moves.
func SafeMoves(state *game.GameState) []game.Move {
	you := state.You()
	if you == nil || len(you.Body) == 0 {
		return nil
	}

	head := you.Head()
	reverse := reverseMove(you.Body)

	moves := make([]game.Move, 0, 4)
	for _, m := range game.AllMoves {
		if m == reverse {
			continue
		}
		p := head.Add(m.Delta())
		if !state.InBounds(p) {
			continue
		}
		if occupied(you.Body[1:], p) {
			continue
		}
		if hitsOpponent(state, you.Id, p) {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// IsTerminal reports whether the controlled snake has no safe move.
func IsTerminal(state *game.GameState) bool {
	return len(SafeMoves(state)) == 0
}

// reverseMove returns the move pointing from the head back at the neck.
// Horizontal offsets take precedence; a stacked neck forbids nothing.
func reverseMove(body []game.Point) game.Move {
	if len(body) < 2 {
		return game.NoMove
	}
	head, neck := body[0], body[1]
	switch {
	case neck.X < head.X:
		return game.MoveLeft
	case neck.X > head.X:
		return game.MoveRight
	case neck.Y < head.Y:
		return game.MoveDown
	case neck.Y > head.Y:
		return game.MoveUp
	}
	return game.NoMove
}

func occupied(body []game.Point, p game.Point) bool {
	for _, bp := range body {
		if bp == p {
			return true
		}
	}
	return false
}

func hitsOpponent(state *game.GameState, youId string, p game.Point) bool {
	for i := range state.Snakes {
		if state.Snakes[i].Id == youId {
			continue
		}
		if occupied(state.Snakes[i].Body, p) {
			return true
		}
	}
	return false
}
