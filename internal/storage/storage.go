package storage

import (
	"context"
	"io"
)

// Store is the upload sink. Save persists the content under key and returns
// a location string; Open reads it back for the ingestion worker. Uploaded
// files are retained, never cleaned up.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
