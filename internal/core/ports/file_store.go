package ports

import (
	"context"
	"io"
)

// FileStore is the "store blob, return path" side channel for uploads.
type FileStore interface {
	Store(ctx context.Context, fileName string, r io.Reader) (string, error)
}
