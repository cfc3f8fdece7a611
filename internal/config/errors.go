package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr      = errors.New("addr must not be empty")
	ErrUnknownStorage = errors.New("storage must be gcs or memory")
	ErrEmptyBucket    = errors.New("bucket must not be empty")
	ErrEmptyObject    = errors.New("object must not be empty")
	ErrInvalidBound   = errors.New("max_entries and write_retries must be positive")
)
