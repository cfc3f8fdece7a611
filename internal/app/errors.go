package app

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrContention means every conditional write attempt lost to a
	// concurrent submission.
	ErrContention = errors.New("board update contention")
)
