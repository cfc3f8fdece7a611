package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// GCSStore persists the board as a single object in a Google Cloud Storage
// bucket. Conditional writes use object generation preconditions, so a
// concurrent overwrite surfaces as ErrPreconditionFailed instead of
// silently winning.
type GCSStore struct {
	client *storage.Client
	bucket string
	object string
}

// NewGCSStore creates a store bound to one (bucket, object) pair. A client
// is created from ambient credentials unless one is injected via options.
func NewGCSStore(ctx context.Context, bucket, object string, opts ...GCSOption) (*GCSStore, error) {
	s := &GCSStore{
		bucket: bucket,
		object: object,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("create storage client: %w", err)
		}
		s.client = client
	}

	return s, nil
}

// Read fetches the object content and its current generation.
func (s *GCSStore) Read(ctx context.Context) (Snapshot, error) {
	r, err := s.client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrObjectNotExist):
			return Snapshot{}, ErrNotFound
		case errors.Is(err, storage.ErrBucketNotExist):
			return Snapshot{}, ErrBucketNotFound
		}
		return Snapshot{}, fmt.Errorf("open object reader: %w", err)
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read object: %w", err)
	}

	return Snapshot{Data: data, Generation: r.Attrs.Generation}, nil
}

// Write overwrites the object, guarded by the given generation. Generation
// zero requires the object to not exist yet. The overwrite is atomic on
// the GCS side; a failed write leaves the previous object intact.
func (s *GCSStore) Write(ctx context.Context, data []byte, generation int64) error {
	obj := s.client.Bucket(s.bucket).Object(s.object)

	conds := storage.Conditions{GenerationMatch: generation}
	if generation == 0 {
		conds = storage.Conditions{DoesNotExist: true}
	}

	w := obj.If(conds).NewWriter(ctx)
	w.ContentType = "application/json"
	w.CacheControl = "no-store"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed {
			return ErrPreconditionFailed
		}
		return fmt.Errorf("close object writer: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

// GCSOption applies a configuration option to the GCSStore.
type GCSOption func(*GCSStore)

// WithClient injects an existing storage client instead of creating one
// from ambient credentials.
func WithClient(client *storage.Client) GCSOption {
	return func(s *GCSStore) {
		if client != nil {
			s.client = client
		}
	}
}
