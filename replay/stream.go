// Package replay streams recorded games from the Battlesnake engine and
// replays every turn of one snake through the decision engine.
package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

// Config holds stream configuration
type Config struct {
	EngineURL      string // WebSocket URL template taking the game id
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

func DefaultConfig() Config {
	return Config{
		EngineURL:      "wss://engine.battlesnake.com/games/%s/events",
		ConnectTimeout: 10 * time.Second,
		ReadTimeout:    30 * time.Second,
	}
}

// GameEvent is one message from the WebSocket stream
type GameEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// GameInfo from the "game_info" event
type GameInfo struct {
	Game    GameDetails `json:"game"`
	Ruleset RulesetInfo `json:"ruleset"`
}

type GameDetails struct {
	ID      string `json:"id"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Timeout int    `json:"timeout"`
}

type RulesetInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Frame from "frame" events
type Frame struct {
	Turn   int         `json:"turn"`
	Snakes []SnakeData `json:"snakes"`
	Food   []Coord     `json:"food"`
	Board  BoardData   `json:"board,omitempty"`
}

type SnakeData struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Health int     `json:"health"`
	Body   []Coord `json:"body"`
	Death  *Death  `json:"death,omitempty"`
}

func (s *SnakeData) Alive() bool {
	return s.Death == nil && s.Health > 0 && len(s.Body) > 0
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type BoardData struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Death struct {
	Cause string `json:"cause"`
	Turn  int    `json:"turn"`
}

// Game is a fully downloaded game.
type Game struct {
	Info   GameInfo
	Frames []Frame
}

// Download connects to the game's event stream and collects every frame
// until the engine signals the end or closes the connection.
func Download(ctx context.Context, cfg Config, gameID string, log *slog.Logger) (*Game, error) {
	if log == nil {
		log = slog.Default()
	}
	url := fmt.Sprintf(cfg.EngineURL, gameID)

	dialer := websocket.Dialer{
		HandshakeTimeout: cfg.ConnectTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", url, err)
	}
	defer conn.Close()

	// Unblock ReadMessage when the caller gives up.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	out := &Game{}

read:
	for {
		_ = conn.SetReadDeadline(time.Now().Add(cfg.ReadTimeout))

		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				break
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// A timeout after some frames still leaves a usable game.
			if len(out.Frames) > 0 {
				log.Warn("stream ended early", slog.String("game", gameID), slog.Int("frames", len(out.Frames)), slog.Any("err", err))
				break
			}
			return nil, fmt.Errorf("read: %w", err)
		}

		var event GameEvent
		if err := json.Unmarshal(message, &event); err != nil {
			log.Warn("unparseable event", slog.String("game", gameID), slog.Any("err", err))
			continue
		}

		switch event.Type {
		case "game_info":
			if err := json.Unmarshal(event.Data, &out.Info); err != nil {
				log.Warn("unparseable game_info", slog.String("game", gameID), slog.Any("err", err))
			}
		case "frame":
			var f Frame
			if err := json.Unmarshal(event.Data, &f); err != nil {
				log.Warn("unparseable frame", slog.String("game", gameID), slog.Any("err", err))
				continue
			}
			out.Frames = append(out.Frames, f)
		case "game_end":
			break read
		}
	}

	if len(out.Frames) == 0 {
		return nil, errors.New("no frames received")
	}
	if out.Info.Game.ID == "" {
		out.Info.Game.ID = gameID
	}
	return out, nil
}
