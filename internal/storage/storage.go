package storage

import (
	"context"
	"io"
)

// Storage defines the file storage operations the attachment layer needs.
type Storage interface {
	// Save stores a file at the given path, creating parent directories.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Delete removes a single file; missing files are not an error.
	Delete(ctx context.Context, path string) error

	// DeleteDir removes every file under the given directory, best-effort:
	// individual failures are ignored.
	DeleteDir(ctx context.Context, dir string)

	// Exists reports whether a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for a stored path.
	URL(path string) string
}

// Config holds storage configuration.
type Config struct {
	BasePath string // filesystem root for stored files
	BaseURL  string // public URL base
}

// NewStorage creates a storage instance. Local filesystem is the only
// backend this system ships with.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
