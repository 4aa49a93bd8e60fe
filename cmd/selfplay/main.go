// Command selfplay pits minimax engines against each other on a local
// board and renders the games live in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brensch/snekmax/archive"
	"github.com/brensch/snekmax/arena"
	"github.com/brensch/snekmax/config"
	"github.com/brensch/snekmax/game"
	"github.com/brensch/snekmax/logging"
	"github.com/brensch/snekmax/rules"
	"github.com/brensch/snekmax/search"
)

type frameMsg arena.Frame

type gameDoneMsg struct {
	result arena.Result
	path   string
	err    error
}

type allDoneMsg struct{}

type model struct {
	updates     chan tea.Msg
	frame       arena.Frame
	gamesPlayed int
	wins        map[string]int
	recent      []string
	startTime   time.Time
	done        bool
}

func initialModel(updates chan tea.Msg) model {
	return model{
		updates:   updates,
		wins:      map[string]int{},
		startTime: time.Now(),
	}
}

func waitForUpdate(updates chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-updates
	}
}

func (m model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case frameMsg:
		m.frame = arena.Frame(msg)
		return m, waitForUpdate(m.updates)
	case gameDoneMsg:
		m.gamesPlayed++
		line := summary(msg.result)
		if msg.err != nil {
			line = fmt.Sprintf("game failed: %v", msg.err)
		} else {
			winner := msg.result.Winner
			if winner == "" {
				winner = "draw"
			}
			m.wins[winner]++
			if msg.path != "" {
				line += " -> " + msg.path
			}
		}
		m.recent = append([]string{line}, m.recent...)
		if len(m.recent) > 8 {
			m.recent = m.recent[:8]
		}
		return m, waitForUpdate(m.updates)
	case allDoneMsg:
		m.done = true
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	if m.frame.State != nil {
		fmt.Fprintf(&b, "Game %s  Turn %d\n\n", m.frame.GameID, m.frame.State.Turn)
		b.WriteString(arena.Render(m.frame.State))
		b.WriteString("\n")
		for i, s := range m.frame.State.Snakes {
			move := "-"
			if mv, ok := m.frame.Moves[s.Id]; ok {
				move = mv.String()
			}
			fmt.Fprintf(&b, "  %c %-8s len=%-3d health=%-3d last=%s\n", 'A'+i, s.Id, s.Len(), s.Health, move)
		}
		for _, e := range m.frame.Eliminated {
			fmt.Fprintf(&b, "  x %-8s %s\n", e.Id, e.Cause)
		}
	}

	fmt.Fprintf(&b, "\nGames Played: %d   Elapsed: %s\n", m.gamesPlayed, time.Since(m.startTime).Round(time.Second))
	keys := make([]string, 0, len(m.wins))
	for k := range m.wins {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %-8s %d\n", k, m.wins[k])
	}

	b.WriteString("\nRecent Games:\n")
	for _, g := range m.recent {
		b.WriteString(g + "\n")
	}
	if m.done {
		b.WriteString("\nAll games finished. Press q to quit.\n")
	} else {
		b.WriteString("\nPress q to quit.\n")
	}
	return b.String()
}

func summary(r arena.Result) string {
	winner := r.Winner
	if winner == "" {
		winner = "draw"
	}
	return fmt.Sprintf("%s: winner=%s turns=%d", r.GameID, winner, r.Turns)
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	def := arena.DefaultConfig()
	games := fs.Int("games", config.Int("GAMES", 1), "Number of games to play")
	snakes := fs.Int("snakes", config.Int("SNAKES", 2), "Snakes per game (1-4)")
	width := fs.Int("width", config.Int("WIDTH", int(def.Width)), "Board width")
	height := fs.Int("height", config.Int("HEIGHT", int(def.Height)), "Board height")
	maxTurns := fs.Int("max-turns", config.Int("MAX_TURNS", def.MaxTurns), "Turn limit per game (0 = none)")
	minFood := fs.Int("min-food", config.Int("MIN_FOOD", def.Food.MinimumFood), "Minimum food on the board")
	foodChance := fs.Int("food-chance", config.Int("FOOD_CHANCE", def.Food.FoodSpawnChance), "Percent chance of extra food each turn")
	seed := fs.Int64("seed", int64(config.Int("SEED", 0)), "RNG seed for the first game (0 = clock)")
	delay := fs.Duration("delay", config.Duration("DELAY", 100*time.Millisecond), "Pause between rendered turns")
	headless := fs.Bool("headless", config.Bool("HEADLESS", false), "Print results instead of rendering")
	outDir := fs.String("out-dir", config.String("OUT_DIR", ""), "Write each game as an archive parquet file here")
	searchFlags := config.BindSearchFlags(fs)
	logFlags := config.BindLogFlags(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("flag parse: %v", err)
	}

	logger, err := logging.New(os.Stderr, logFlags.Options())
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	cfg, err := searchFlags.Config()
	if err != nil {
		log.Fatalf("%v", err)
	}

	arenaCfg := arena.Config{
		Width:    int32(*width),
		Height:   int32(*height),
		MaxTurns: *maxTurns,
		Food:     rules.FoodSettings{MinimumFood: *minFood, FoodSpawnChance: *foodChance},
		Seed:     *seed,
	}

	players := make([]arena.Player, *snakes)
	for i := range players {
		players[i] = arena.Player{
			Id:     fmt.Sprintf("snake%d", i+1),
			Engine: search.NewEngine(cfg).WithLogger(logger),
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan tea.Msg, 64)
	send := func(msg tea.Msg) {
		select {
		case updates <- msg:
		case <-ctx.Done():
		}
	}

	go func() {
		for i := 0; i < *games && ctx.Err() == nil; i++ {
			gameCfg := arenaCfg
			if gameCfg.Seed != 0 {
				gameCfg.Seed += int64(i)
			}

			var rows []archive.TurnRow
			var prev *game.GameState
			res, err := arena.Play(ctx, gameCfg, players, func(f arena.Frame) {
				if *outDir != "" && prev != nil {
					rows = append(rows, archive.Row(f.GameID, "selfplay", prev, f.Moves))
				}
				prev = f.State
				if !*headless {
					send(frameMsg(f))
					time.Sleep(*delay)
				}
			})

			var path string
			if err == nil && *outDir != "" && len(rows) > 0 {
				path = filepath.Join(*outDir, res.GameID+".parquet")
				if werr := archive.WriteFile(path, rows); werr != nil {
					err = werr
					path = ""
				}
			}
			if *headless {
				if err != nil {
					logger.Error("game failed", slog.Any("err", err))
				} else {
					logger.Info("game finished", slog.String("game", res.GameID), slog.String("winner", res.Winner), slog.Int("turns", res.Turns), slog.String("path", path))
				}
				continue
			}
			send(gameDoneMsg{result: res, path: path, err: err})
		}
		if *headless {
			close(updates)
			return
		}
		send(allDoneMsg{})
	}()

	if *headless {
		for range updates {
		}
		return
	}

	p := tea.NewProgram(initialModel(updates), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
