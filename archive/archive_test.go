package archive

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brensch/snekmax/game"
	"github.com/brensch/snekmax/search"
)

func openingState(turn int32) *game.GameState {
	return &game.GameState{
		Width:  11,
		Height: 11,
		YouId:  "me",
		Turn:   turn,
		Food:   []game.Point{{X: 5, Y: 6}},
		Snakes: []game.Snake{
			{Id: "me", Health: 90, Length: 2, Body: []game.Point{{X: 5, Y: 5}, {X: 5, Y: 4}}},
			{Id: "them", Health: 80, Length: 3, Body: []game.Point{{X: 9, Y: 9}, {X: 9, Y: 8}, {X: 9, Y: 7}}},
		},
	}
}

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games", "batch_1.parquet")
	rows := []TurnRow{
		// The engine goes for the food: agrees with "up".
		Row("g-1", "test", openingState(0), map[string]game.Move{"me": game.MoveUp, "them": game.MoveDown}),
		// Same board recorded with "left": disagrees.
		Row("g-1", "test", openingState(1), map[string]game.Move{"me": game.MoveLeft}),
	}
	require.NoError(t, WriteFile(path, rows))
	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file should be renamed away")
	return path
}

func TestRowState(t *testing.T) {
	st := openingState(7)
	st.Snakes[1].Health = 0
	row := Row("g", "src", st, nil)

	assert.Equal(t, int32(-1), row.Snakes[0].Policy)
	assert.False(t, row.Snakes[1].Alive)

	back := row.State("me")
	assert.Equal(t, int32(7), back.Turn)
	assert.Equal(t, st.Food, back.Food)
	require.Len(t, back.Snakes, 1, "dead snakes are dropped")
	assert.Equal(t, st.Snakes[0].Body, back.Snakes[0].Body)
	assert.Equal(t, int32(2), back.Snakes[0].Length)
}

func TestReadFile(t *testing.T) {
	path := writeFixture(t)

	var turns []int32
	var ids []string
	err := ReadFile(path, func(r TurnRow) error {
		turns = append(turns, r.Turn)
		for _, s := range r.Snakes {
			ids = append(ids, strings.Clone(s.ID))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1}, turns)
	assert.Equal(t, []string{"me", "them", "me", "them"}, ids)
}

func TestBenchmark(t *testing.T) {
	path := writeFixture(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	res, err := Benchmark(search.NewEngine(search.DefaultConfig()), []string{path}, 0, log)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, 2, res.Rows)
	// me twice, them once.
	assert.Equal(t, 3, res.Positions)
	// "them" is recorded moving back into its neck, which is never offered.
	assert.Equal(t, 1, res.Agreed)
	assert.Zero(t, res.Fallbacks)

	limited, err := Benchmark(search.NewEngine(search.DefaultConfig()), []string{path, path}, 1, log)
	require.NoError(t, err)
	assert.Equal(t, 1, limited.Positions)
	assert.Equal(t, 1, limited.Agreed)
	assert.Equal(t, 1, limited.Files)
}

func TestReadFile_Missing(t *testing.T) {
	err := ReadFile(filepath.Join(t.TempDir(), "nope.parquet"), func(TurnRow) error { return nil })
	require.Error(t, err)
}
