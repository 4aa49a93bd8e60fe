// Package archive reads and writes per-turn game archives in Parquet.
//
// One row holds a whole board for one turn with nested snakes, so food is
// not duplicated per snake. Policy is the move a snake played on that turn
// (0=Up, 1=Down, 2=Left, 3=Right) or -1 when unknown.
package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/brensch/snekmax/game"
)

// SchemaVersion is stored in the file's key/value metadata.
const SchemaVersion = "archive_turn_v1"

type TurnRow struct {
	GameID string `parquet:"game_id,dict"`
	Turn   int32  `parquet:"turn"`
	Width  int32  `parquet:"width"`
	Height int32  `parquet:"height"`

	FoodX []int32 `parquet:"food_x"`
	FoodY []int32 `parquet:"food_y"`

	Snakes []Snake `parquet:"snakes"`

	Source string `parquet:"source,dict"`
}

type Snake struct {
	ID     string `parquet:"id,dict"`
	Alive  bool   `parquet:"alive"`
	Health int32  `parquet:"health"`

	BodyX []int32 `parquet:"body_x"`
	BodyY []int32 `parquet:"body_y"`

	Policy int32 `parquet:"policy"`
}

// Row builds a TurnRow from a snapshot. policies maps snake ids to the move
// they played; snakes without an entry get -1.
func Row(gameID, source string, state *game.GameState, policies map[string]game.Move) TurnRow {
	row := TurnRow{
		GameID: gameID,
		Turn:   state.Turn,
		Width:  state.Width,
		Height: state.Height,
		Source: source,
		FoodX:  make([]int32, len(state.Food)),
		FoodY:  make([]int32, len(state.Food)),
		Snakes: make([]Snake, len(state.Snakes)),
	}
	for i, f := range state.Food {
		row.FoodX[i], row.FoodY[i] = f.X, f.Y
	}
	for i, s := range state.Snakes {
		as := Snake{
			ID:     s.Id,
			Alive:  s.Alive(),
			Health: s.Health,
			BodyX:  make([]int32, len(s.Body)),
			BodyY:  make([]int32, len(s.Body)),
			Policy: -1,
		}
		for j, p := range s.Body {
			as.BodyX[j], as.BodyY[j] = p.X, p.Y
		}
		if m, ok := policies[s.Id]; ok && m.Valid() {
			as.Policy = int32(m)
		}
		row.Snakes[i] = as
	}
	return row
}

// State converts a row to a snapshot controlled by youID. Dead snakes are
// left out.
func (r *TurnRow) State(youID string) *game.GameState {
	st := &game.GameState{
		Width:  r.Width,
		Height: r.Height,
		Turn:   r.Turn,
		YouId:  youID,
	}
	n := min(len(r.FoodX), len(r.FoodY))
	st.Food = make([]game.Point, 0, n)
	for j := 0; j < n; j++ {
		st.Food = append(st.Food, game.Point{X: r.FoodX[j], Y: r.FoodY[j]})
	}

	st.Snakes = make([]game.Snake, 0, len(r.Snakes))
	for _, s := range r.Snakes {
		if !s.Alive {
			continue
		}
		k := min(len(s.BodyX), len(s.BodyY))
		body := make([]game.Point, 0, k)
		for j := 0; j < k; j++ {
			body = append(body, game.Point{X: s.BodyX[j], Y: s.BodyY[j]})
		}
		st.Snakes = append(st.Snakes, game.Snake{Id: s.ID, Health: s.Health, Length: int32(len(body)), Body: body})
	}
	return st
}

// WriteFile writes rows to outPath through a temp file and a rename.
func WriteFile(outPath string, rows []TurnRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", SchemaVersion),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadFile streams the rows of one archive file to fn in batches.
// The row's slices are only valid until fn returns.
func ReadFile(path string, fn func(TurnRow) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return fmt.Errorf("open parquet %s: %w", path, err)
	}

	reader := parquet.NewGenericReader[TurnRow](pf)
	defer reader.Close()

	buf := make([]TurnRow, 256)
	for {
		n, err := reader.Read(buf)
		for i := 0; i < n; i++ {
			if ferr := fn(buf[i]); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}
}
