// Command battlesnake serves the minimax engine over the Battlesnake API.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brensch/snekmax/config"
	"github.com/brensch/snekmax/logging"
	"github.com/brensch/snekmax/search"
	"github.com/brensch/snekmax/server"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	listen := fs.String("listen", config.String("LISTEN", ":8000"), "HTTP listen address")
	author := fs.String("author", config.String("AUTHOR", server.DefaultAppearance.Author), "Battlesnake username")
	color := fs.String("color", config.String("COLOR", server.DefaultAppearance.Color), "Snake color")
	head := fs.String("head", config.String("HEAD", server.DefaultAppearance.Head), "Snake head customization")
	tail := fs.String("tail", config.String("TAIL", server.DefaultAppearance.Tail), "Snake tail customization")
	searchFlags := config.BindSearchFlags(fs)
	logFlags := config.BindLogFlags(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("flag parse: %v", err)
	}

	logger, err := logging.New(os.Stderr, logFlags.Options())
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	slog.SetDefault(logger)

	cfg, err := searchFlags.Config()
	if err != nil {
		log.Fatalf("%v", err)
	}

	appearance := server.DefaultAppearance
	appearance.Author = *author
	appearance.Color = *color
	appearance.Head = *head
	appearance.Tail = *tail

	srv := &http.Server{
		Addr:              *listen,
		Handler:           server.New(search.NewEngine(cfg), appearance, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("battlesnake server listening",
		slog.String("addr", *listen),
		slog.Int("depth", cfg.Depth),
		slog.String("weights", cfg.Weights.String()),
		slog.String("body", cfg.Body.String()),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
