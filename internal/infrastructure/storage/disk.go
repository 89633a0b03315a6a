// Package storage implements the blob side channel for document uploads:
// store a file, hand back the path it can be served from.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// DiskStore writes uploaded files to a local directory. Stored names are
// prefixed with a UUID so distinct uploads of the same file never collide.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a DiskStore.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Store writes r to disk and returns the stored file's path.
func (s *DiskStore) Store(ctx context.Context, fileName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Base() strips any client-supplied directory components.
	name := uuid.NewString() + "-" + filepath.Base(fileName)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}
	return path, nil
}
