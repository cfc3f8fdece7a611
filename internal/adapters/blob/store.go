// Package blob provides whole-object read/write access to the persisted
// leaderboard, one fixed (bucket, object) pair per store.
package blob

import "context"

// Snapshot is the full object content plus the generation token observed
// at read time. The token guards the next conditional write.
type Snapshot struct {
	Data       []byte
	Generation int64
}

// Store reads and overwrites a single blob. Writes are conditional on the
// generation the caller last observed; a generation of zero asserts the
// object does not exist yet. There is no retry and no caching here.
type Store interface {
	// Read fetches the full object content. Returns ErrNotFound when the
	// object does not exist.
	Read(ctx context.Context) (Snapshot, error)

	// Write overwrites the object wholesale. Returns ErrPreconditionFailed
	// when the object generation no longer matches.
	Write(ctx context.Context, data []byte, generation int64) error
}
