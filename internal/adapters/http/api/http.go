// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arcadehall/highscore/internal/domain/board"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the app service.
type Dependencies interface {
	// List returns the current leaderboard.
	List(ctx context.Context) ([]Entry, error)

	// Submit merges a validated entry and returns the updated board.
	Submit(ctx context.Context, name string, score float64) ([]Entry, error)
}

// Entry mirrors the persisted leaderboard row shape.
type Entry = board.Entry

// Server wires HTTP routes for the highscore API.
type Server struct {
	scoresHandler *ScoresHandler
	submitHandler *SubmitHandler
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		scoresHandler: NewScoresHandler(deps),
		submitHandler: NewSubmitHandler(deps),
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux. The root route doubles as the
// catch-all: anything that is not a registered path answers 400.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", Middleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", Middleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/submit", Middleware(s.submitHandler.HandleSubmit, "submit"))
	mux.HandleFunc("/", Middleware(s.scoresHandler.HandleScores, "scores"))
}

const badRequestBody = "Bad request"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeBadRequest answers the uniform bad-request response. Validation and
// routing failures are deliberately indistinguishable to the caller.
func writeBadRequest(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte(badRequestBody))
}

// writeServerError answers a generic server fault with no application body.
func writeServerError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
