// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/arcadehall/highscore/internal/domain/board"
	"github.com/arcadehall/highscore/pkg/metrics"
)

// Submission constraints.
const (
	maxNameLength = 20
	maxScore      = 100000.0
)

// SubmitDependencies defines the interface for score submission.
type SubmitDependencies interface {
	Submit(ctx context.Context, name string, score float64) ([]Entry, error)
}

// SubmitHandler handles score submissions.
type SubmitHandler struct {
	deps SubmitDependencies
}

// NewSubmitHandler creates a new submit handler.
func NewSubmitHandler(deps SubmitDependencies) *SubmitHandler {
	return &SubmitHandler{deps: deps}
}

// submitRequest carries the raw request parameters, delivered as query or
// form values.
type submitRequest struct {
	Name  string
	Score string
}

// validate checks the constraints in order: name first, score second. It
// returns the rounded score on success. Which rule failed is never exposed
// to the caller.
func (s submitRequest) validate() (float64, error) {
	if s.Name == "" {
		return 0, NewKind("validate name", ErrBadRequest)
	}
	if utf8.RuneCountInString(s.Name) > maxNameLength {
		return 0, NewKind("validate name length", ErrBadRequest)
	}

	v, err := strconv.ParseFloat(s.Score, 64)
	if err != nil {
		return 0, WrapKind("parse score", ErrBadRequest, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, NewKind("validate score finiteness", ErrBadRequest)
	}
	v = board.RoundScore(v)
	if v <= 0 || v > maxScore {
		return 0, NewKind("validate score range", ErrBadRequest)
	}
	return v, nil
}

// HandleSubmit handles POST /submit requests. Any other method on the path
// is a bad request, indistinguishable from a validation failure.
func (h *SubmitHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeBadRequest(w)
		return
	}

	req := submitRequest{
		Name:  r.FormValue("name"),
		Score: r.FormValue("score"),
	}
	score, err := req.validate()
	if err != nil {
		metrics.RecordSubmissionRejected()
		writeBadRequest(w)
		return
	}

	entries, err := h.deps.Submit(r.Context(), req.Name, score)
	if err != nil {
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
