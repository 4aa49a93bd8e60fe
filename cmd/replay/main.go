// Command replay downloads a finished game from the Battlesnake engine and
// shows, turn by turn, where the minimax engine would have moved instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/brensch/snekmax/config"
	"github.com/brensch/snekmax/logging"
	"github.com/brensch/snekmax/replay"
	"github.com/brensch/snekmax/search"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	def := replay.DefaultConfig()
	gameID := fs.String("game", "", "Engine game id to replay (required)")
	snake := fs.String("snake", "", "Snake id or name to replay as (required)")
	engineURL := fs.String("engine-url", config.String("ENGINE_URL", def.EngineURL), "WebSocket URL template for game events")
	connectTimeout := fs.Duration("connect-timeout", config.Duration("CONNECT_TIMEOUT", def.ConnectTimeout), "WebSocket handshake timeout")
	readTimeout := fs.Duration("read-timeout", config.Duration("READ_TIMEOUT", def.ReadTimeout), "Per-message read timeout")
	searchFlags := config.BindSearchFlags(fs)
	logFlags := config.BindLogFlags(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("flag parse: %v", err)
	}
	if *gameID == "" || *snake == "" {
		fs.Usage()
		os.Exit(2)
	}

	logger, err := logging.New(os.Stderr, logFlags.Options())
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	cfg, err := searchFlags.Config()
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := replay.Download(ctx, replay.Config{
		EngineURL:      *engineURL,
		ConnectTimeout: *connectTimeout,
		ReadTimeout:    *readTimeout,
	}, *gameID, logger)
	if err != nil {
		log.Fatalf("download %s: %v", *gameID, err)
	}

	snakeID, err := replay.ResolveSnake(g, *snake)
	if err != nil {
		log.Fatalf("%v", err)
	}

	rep, err := replay.Compare(search.NewEngine(cfg).WithLogger(logger), g, snakeID)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}

	for _, t := range rep.Turns {
		mark := " "
		if !t.Agreed() {
			mark = "*"
		}
		fmt.Printf("%s turn %3d  played=%-5s engine=%-5s value=%7.2f\n", mark, t.Turn, t.Played, t.Engine, t.Value)
	}
	fmt.Printf("\n%s as %s: agreed %d/%d (%.1f%%)\n", rep.GameID, rep.SnakeID, rep.Agreed(), len(rep.Turns), 100*rep.Rate())
}
