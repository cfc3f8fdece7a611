package blob

import "errors"

// Sentinel kinds for storage errors.
var (
	ErrNotFound           = errors.New("object not found")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrPreconditionFailed = errors.New("object generation precondition failed")
)
