// Package server exposes the decision engine over the Battlesnake HTTP API.
//
// Every request is decided independently; the server keeps no per-game
// state.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/brensch/snekmax/search"
)

// Appearance is returned from GET /.
type Appearance struct {
	Author  string
	Color   string
	Head    string
	Tail    string
	Version string
}

var DefaultAppearance = Appearance{
	Author:  "",
	Color:   "#888888",
	Head:    "default",
	Tail:    "default",
	Version: "1.0.0",
}

// Server holds the engine and presentation settings.
type Server struct {
	engine     *search.Engine
	appearance Appearance
	log        *slog.Logger
}

func New(engine *search.Engine, appearance Appearance, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		engine:     engine.WithLogger(log),
		appearance: appearance,
		log:        log,
	}
}

// Handler returns the Battlesnake routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/start", s.handleStart)
	mux.HandleFunc("/move", s.handleMove)
	mux.HandleFunc("/end", s.handleEnd)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, InfoResponse{
		APIVersion: "1",
		Author:     s.appearance.Author,
		Color:      s.appearance.Color,
		Head:       s.appearance.Head,
		Tail:       s.appearance.Tail,
		Version:    s.appearance.Version,
	})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	s.engine.Start(ToGameState(req))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	req, ok := s.decode(w, r)
	if !ok {
		return
	}

	d, err := s.engine.Decide(ToGameState(req))
	if err != nil {
		s.log.Warn("rejected move request", slog.String("game", req.Game.ID), slog.Int("turn", req.Turn), slog.Any("err", err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.log.Info("move",
		slog.String("game", req.Game.ID),
		slog.Int("turn", req.Turn),
		slog.String("move", d.Move.String()),
		slog.Float64("value", d.Value),
		slog.Int("nodes", d.Stats.Nodes),
		slog.Duration("took", time.Since(startTime)),
	)

	resp := MoveResponse{
		Move:  d.Move.String(),
		Shout: fmt.Sprintf("%.2f over %d nodes", d.Value, d.Stats.Nodes),
	}
	if d.Fallback {
		resp.Shout = "boxed in"
	}
	writeJSON(w, resp)
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	s.engine.End(boardState(req))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*GameRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
