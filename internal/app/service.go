// Package app provides the core service behind the HTTP handlers: it owns
// the read-merge-write cycle against the blob store.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/arcadehall/highscore/internal/adapters/blob"
	"github.com/arcadehall/highscore/internal/domain/board"
	"github.com/arcadehall/highscore/pkg/logger"
	"github.com/arcadehall/highscore/pkg/metrics"
)

const (
	defaultWriteRetries = 4
)

// Service implements the leaderboard operations over a blob.Store.
type Service struct {
	store        blob.Store
	maxEntries   int
	writeRetries int
	now          func() time.Time
	log          logger.Logger

	lastSize atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the blob store backing the leaderboard.
func WithStore(store blob.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMaxEntries bounds the leaderboard length.
func WithMaxEntries(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithWriteRetries bounds retries of the conditional write after a lost race.
func WithWriteRetries(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.writeRetries = n
		}
	}
}

// WithClock overrides the wall clock used for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service with default configuration. A store must be
// provided via WithStore before use.
func New(opts ...Option) *Service {
	s := &Service{
		maxEntries:   board.DefaultMaxEntries,
		writeRetries: defaultWriteRetries,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	return s
}

// List returns the current leaderboard. A missing object reads as an empty
// board rather than an error; the reference system faulted here instead.
func (s *Service) List(ctx context.Context) ([]board.Entry, error) {
	entries, _, err := s.readBoard(ctx)
	if err != nil {
		return nil, err
	}

	s.lastSize.Store(int64(len(entries)))
	metrics.UpdateBoardSize(len(entries))
	return entries, nil
}

// Submit merges a validated entry into the board and persists it with a
// conditional write, retrying a bounded number of times when a concurrent
// submission wins the race. Returns the updated board.
func (s *Service) Submit(ctx context.Context, name string, score float64) ([]board.Entry, error) {
	entry := board.Entry{
		Name:      name,
		Score:     score,
		Timestamp: s.now().Format(time.RFC3339),
	}

	for attempt := 0; attempt < s.writeRetries; attempt++ {
		entries, generation, err := s.readBoard(ctx)
		if err != nil {
			return nil, err
		}

		updated := board.Insert(entries, entry, s.maxEntries)

		data, err := board.Encode(updated)
		if err != nil {
			return nil, fmt.Errorf("encode board: %w", err)
		}

		if err := s.writeBoard(ctx, data, generation); err != nil {
			if errors.Is(err, blob.ErrPreconditionFailed) {
				metrics.RecordStorageConflict()
				s.log.Warn(ctx, "lost write race, retrying",
					logger.Int("attempt", attempt+1),
					logger.Int64("generation", generation),
				)
				continue
			}
			return nil, err
		}

		s.lastSize.Store(int64(len(updated)))
		metrics.RecordSubmissionAccepted()
		metrics.UpdateBoardSize(len(updated))
		s.log.Info(ctx, "score submitted",
			logger.String("name", name),
			logger.Float64("score", score),
			logger.Int("board_size", len(updated)),
		)
		return updated, nil
	}

	return nil, ErrContention
}

// GetStats returns service counters for the operational surface.
func (s *Service) GetStats() map[string]any {
	return map[string]any{
		"maxEntries":   s.maxEntries,
		"writeRetries": s.writeRetries,
		"boardSize":    int(s.lastSize.Load()),
	}
}

// readBoard loads and decodes the persisted state. A missing object yields
// an empty board at generation zero, which makes the next write assert
// object creation.
func (s *Service) readBoard(ctx context.Context) ([]board.Entry, int64, error) {
	snap, err := s.store.Read(ctx)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			metrics.RecordStorageRead()
			return []board.Entry{}, 0, nil
		}
		metrics.RecordStorageReadError()
		return nil, 0, fmt.Errorf("read board: %w", err)
	}
	metrics.RecordStorageRead()

	entries, err := board.Decode(snap.Data)
	if err != nil {
		return nil, 0, fmt.Errorf("decode board: %w", err)
	}
	if entries == nil {
		entries = []board.Entry{}
	}
	return entries, snap.Generation, nil
}

func (s *Service) writeBoard(ctx context.Context, data []byte, generation int64) error {
	if err := s.store.Write(ctx, data, generation); err != nil {
		if errors.Is(err, blob.ErrPreconditionFailed) {
			return err
		}
		metrics.RecordStorageWriteError()
		return fmt.Errorf("write board: %w", err)
	}
	metrics.RecordStorageWrite()
	return nil
}
