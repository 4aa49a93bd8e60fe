package rules

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/brensch/snekmax/game"
)

var noFood = FoodSettings{MinimumFood: 0, FoodSpawnChance: 0}

func duel(a, b []game.Point) *game.GameState {
	return &game.GameState{
		Width:  7,
		Height: 7,
		YouId:  "a",
		Snakes: []game.Snake{
			{Id: "a", Health: 100, Length: int32(len(a)), Body: a},
			{Id: "b", Health: 100, Length: int32(len(b)), Body: b},
		},
	}
}

func TestStep_NormalMove(t *testing.T) {
	before := duel(pts(1, 1, 1, 0), pts(5, 5, 5, 6))
	after, elim := Step(before, map[string]game.Move{"a": game.MoveUp, "b": game.MoveDown}, nil, noFood)
	t.Logf("\n%s\n%s", dumpState(before), dumpState(after))

	if len(elim) != 0 {
		t.Fatalf("unexpected eliminations %v", elim)
	}
	if want := pts(1, 2, 1, 1); !reflect.DeepEqual(after.Snakes[0].Body, want) {
		t.Fatalf("a body=%v want=%v", after.Snakes[0].Body, want)
	}
	if after.Snakes[0].Health != 99 || after.Snakes[1].Health != 99 {
		t.Fatalf("health not decremented")
	}
}

func TestStep_EatFood_GrowsByAppendingTail(t *testing.T) {
	before := duel(pts(3, 3, 3, 2, 3, 1), pts(6, 6, 6, 5))
	before.Snakes[0].Health = 50
	before.Food = pts(3, 4)
	after, _ := Step(before, map[string]game.Move{"a": game.MoveUp, "b": game.MoveLeft}, nil, noFood)
	t.Logf("\n%s\n%s", dumpState(before), dumpState(after))

	a := after.Snakes[0]
	if want := pts(3, 4, 3, 3, 3, 2, 3, 2); !reflect.DeepEqual(a.Body, want) {
		t.Fatalf("body=%v want=%v", a.Body, want)
	}
	if a.Health != 100 || a.Length != 4 {
		t.Fatalf("health=%d length=%d", a.Health, a.Length)
	}
	if len(after.Food) != 0 {
		t.Fatalf("food=%v", after.Food)
	}
}

func TestStep_WallAndMissingMove(t *testing.T) {
	before := duel(pts(0, 3, 1, 3), pts(5, 5, 5, 6))
	after, elim := Step(before, map[string]game.Move{"a": game.MoveLeft}, nil, noFood)
	if len(after.Snakes) != 0 {
		t.Fatalf("both snakes should be gone, got %d", len(after.Snakes))
	}
	causes := map[string]string{}
	for _, e := range elim {
		causes[e.Id] = e.Cause
	}
	if causes["a"] != DeathCauseWallCollision || causes["b"] != DeathCauseNoMove {
		t.Fatalf("causes=%v", causes)
	}
}

func TestStep_HeadToHead(t *testing.T) {
	before := duel(pts(2, 3, 1, 3, 0, 3), pts(4, 3, 5, 3))
	after, elim := Step(before, map[string]game.Move{"a": game.MoveRight, "b": game.MoveLeft}, nil, noFood)
	t.Logf("\n%s\n%s", dumpState(before), dumpState(after))
	if len(after.Snakes) != 1 || after.Snakes[0].Id != "a" {
		t.Fatalf("longer snake should survive, got %v", after.Snakes)
	}
	if len(elim) != 1 || elim[0].Cause != DeathCauseHeadToHeadCollision {
		t.Fatalf("elim=%v", elim)
	}

	even := duel(pts(2, 3, 1, 3), pts(4, 3, 5, 3))
	after, _ = Step(even, map[string]game.Move{"a": game.MoveRight, "b": game.MoveLeft}, nil, noFood)
	if len(after.Snakes) != 0 || !IsGameOver(after) {
		t.Fatalf("equal lengths should both die")
	}
}

func TestStep_BodyCollision(t *testing.T) {
	before := duel(pts(2, 2, 1, 2), pts(3, 3, 3, 2, 3, 1))
	after, elim := Step(before, map[string]game.Move{"a": game.MoveRight, "b": game.MoveUp}, nil, noFood)
	t.Logf("\n%s\n%s", dumpState(before), dumpState(after))
	if len(elim) != 1 || elim[0].Id != "a" || elim[0].Cause != DeathCauseSnakeCollision {
		t.Fatalf("elim=%v", elim)
	}
}

func TestStep_Starvation(t *testing.T) {
	before := duel(pts(1, 1, 1, 0), pts(5, 5, 5, 6))
	before.Snakes[1].Health = 1
	_, elim := Step(before, map[string]game.Move{"a": game.MoveUp, "b": game.MoveDown}, nil, noFood)
	if len(elim) != 1 || elim[0].Id != "b" || elim[0].Cause != DeathCauseStarvation {
		t.Fatalf("elim=%v", elim)
	}
}

func TestFood_MinimumFoodIsEnforced(t *testing.T) {
	state := duel(pts(1, 1), pts(5, 5))
	SpawnFood(state, rand.New(rand.NewSource(1)), FoodSettings{MinimumFood: 3})
	if len(state.Food) != 3 {
		t.Fatalf("food=%d want=3", len(state.Food))
	}
	seen := map[game.Point]bool{}
	for _, f := range state.Food {
		if seen[f] || f == (game.Point{X: 1, Y: 1}) || f == (game.Point{X: 5, Y: 5}) || !state.InBounds(f) {
			t.Fatalf("bad food placement %v", state.Food)
		}
		seen[f] = true
	}
}

func TestFood_SpawnChanceCanAddExtra(t *testing.T) {
	state := duel(pts(1, 1), pts(5, 5))
	state.Food = pts(3, 3)
	SpawnFood(state, rand.New(rand.NewSource(7)), FoodSettings{MinimumFood: 1, FoodSpawnChance: 100})
	if len(state.Food) != 2 {
		t.Fatalf("food=%d want=2", len(state.Food))
	}
}

func TestFood_FullBoard(t *testing.T) {
	state := &game.GameState{Width: 2, Height: 1, YouId: "a", Snakes: []game.Snake{{Id: "a", Health: 1, Body: pts(0, 0, 1, 0)}}}
	SpawnFood(state, nil, FoodSettings{MinimumFood: 2, FoodSpawnChance: 100})
	if len(state.Food) != 0 {
		t.Fatalf("no room yet food=%v", state.Food)
	}
}
