package blob

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store with the same generation semantics as
// the GCS implementation. Used for tests and local runs.
type MemoryStore struct {
	mu         sync.Mutex
	exists     bool
	data       []byte
	generation int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Read returns the current object content and generation.
func (s *MemoryStore) Read(_ context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.exists {
		return Snapshot{}, ErrNotFound
	}

	data := make([]byte, len(s.data))
	copy(data, s.data)
	return Snapshot{Data: data, Generation: s.generation}, nil
}

// Write overwrites the object when the generation precondition holds.
func (s *MemoryStore) Write(_ context.Context, data []byte, generation int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation == 0 {
		if s.exists {
			return ErrPreconditionFailed
		}
	} else if !s.exists || s.generation != generation {
		return ErrPreconditionFailed
	}

	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.exists = true
	s.generation++
	return nil
}

// MemoryOption applies a configuration option to the MemoryStore.
type MemoryOption func(*MemoryStore)

// WithSeed pre-populates the object content at generation one.
func WithSeed(data []byte) MemoryOption {
	return func(s *MemoryStore) {
		s.data = make([]byte, len(data))
		copy(s.data, data)
		s.exists = true
		s.generation = 1
	}
}
