// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ScoresDependencies defines the interface for listing the board.
type ScoresDependencies interface {
	List(ctx context.Context) ([]Entry, error)
}

// ScoresHandler serves the leaderboard at the root path. Because it is
// registered at "/", it also answers every otherwise-unmatched path with
// the uniform bad-request response.
type ScoresHandler struct {
	deps ScoresDependencies
}

// NewScoresHandler creates a new scores handler.
func NewScoresHandler(deps ScoresDependencies) *ScoresHandler {
	return &ScoresHandler{deps: deps}
}

// HandleScores handles requests to "/" (any method).
func (h *ScoresHandler) HandleScores(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeBadRequest(w)
		return
	}

	entries, err := h.deps.List(r.Context())
	if err != nil {
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
