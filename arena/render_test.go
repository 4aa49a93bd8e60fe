package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brensch/snekmax/game"
)

func TestRender(t *testing.T) {
	state := &game.GameState{
		Width:  4,
		Height: 3,
		Food:   []game.Point{{X: 3, Y: 2}},
		Snakes: []game.Snake{
			{Id: "a", Body: []game.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}},
			{Id: "b", Body: []game.Point{{X: 2, Y: 1}, {X: 2, Y: 2}}},
		},
	}
	want := "" +
		"..b*\n" +
		"..B.\n" +
		"Aa..\n"
	assert.Equal(t, want, Render(state))
	assert.Empty(t, Render(nil))
}
