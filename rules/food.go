package rules

import (
	"math/rand"

	"github.com/brensch/snekmax/game"
)

// FoodSettings matches the common Battlesnake server knobs:
// - MinimumFood: ensure at least this many food items exist after each turn
// - FoodSpawnChance: percentage chance (0-100) to spawn one extra food each turn
type FoodSettings struct {
	MinimumFood     int
	FoodSpawnChance int
}

var DefaultFoodSettings = FoodSettings{MinimumFood: 1, FoodSpawnChance: 15}

// SpawnFood tops the board up to MinimumFood and rolls for one extra item.
// Food only lands on cells free of snakes and food. A nil rng is seeded
// from the turn so replays of the same game spawn the same food.
func SpawnFood(state *game.GameState, rng *rand.Rand, settings FoodSettings) {
	if state == nil || state.Width <= 0 || state.Height <= 0 {
		return
	}
	settings.MinimumFood = max(settings.MinimumFood, 0)
	settings.FoodSpawnChance = min(max(settings.FoodSpawnChance, 0), 100)

	if rng == nil {
		rng = rand.New(rand.NewSource(int64(state.Turn) + 1))
	}

	toSpawn := max(settings.MinimumFood-len(state.Food), 0)
	if settings.FoodSpawnChance > 0 && rng.Intn(100) < settings.FoodSpawnChance {
		toSpawn++
	}
	if toSpawn == 0 {
		return
	}

	taken := make(map[game.Point]bool, len(state.Food)+8)
	for _, s := range state.Snakes {
		for _, p := range s.Body {
			taken[p] = true
		}
	}
	for _, f := range state.Food {
		taken[f] = true
	}

	free := make([]game.Point, 0, max(int(state.Width*state.Height)-len(taken), 0))
	for y := int32(0); y < state.Height; y++ {
		for x := int32(0); x < state.Width; x++ {
			p := game.Point{X: x, Y: y}
			if !taken[p] {
				free = append(free, p)
			}
		}
	}

	for ; toSpawn > 0 && len(free) > 0; toSpawn-- {
		i := rng.Intn(len(free))
		state.Food = append(state.Food, free[i])
		free[i] = free[len(free)-1]
		free = free[:len(free)-1]
	}
}
