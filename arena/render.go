package arena

import (
	"strings"

	"github.com/brensch/snekmax/game"
)

// Render draws the board top row first. Snakes are lettered in slice
// order, uppercase for heads; food is '*'.
func Render(state *game.GameState) string {
	if state == nil || state.Width <= 0 || state.Height <= 0 {
		return ""
	}
	grid := make([][]byte, state.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", int(state.Width)))
	}
	for _, f := range state.Food {
		if state.InBounds(f) {
			grid[f.Y][f.X] = '*'
		}
	}
	for i, s := range state.Snakes {
		sym := byte('a' + i%26)
		// Tail first so the head wins on stacked segments.
		for j := len(s.Body) - 1; j >= 0; j-- {
			p := s.Body[j]
			if !state.InBounds(p) {
				continue
			}
			if j == 0 {
				grid[p.Y][p.X] = sym - 32
			} else {
				grid[p.Y][p.X] = sym
			}
		}
	}

	var sb strings.Builder
	sb.Grow(int((state.Width + 1) * state.Height))
	for y := state.Height - 1; y >= 0; y-- {
		sb.Write(grid[y])
		sb.WriteByte('\n')
	}
	return sb.String()
}
