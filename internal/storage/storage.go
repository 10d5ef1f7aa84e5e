// Package storage saves uploaded media either to local disk or to an
// S3-compatible object store, selected at startup from config.
package storage

import (
	"context"
	"io"
)

// SavedObject describes where an upload ended up. Key is the backend's
// identifier for the object ("" for local files, which are addressed by
// URL path alone).
type SavedObject struct {
	URL string
	Key string
}

type ObjectStorage interface {
	Save(ctx context.Context, filename, mimeType string, r io.Reader, size int64) (*SavedObject, error)
	Remove(ctx context.Context, key string) error
}
