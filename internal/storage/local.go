package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"furnimarket_backend/internal/logger"
)

// LocalStorage implements Storage on the local filesystem.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./uploads"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  cfg.BaseURL,
	}, nil
}

func (s *LocalStorage) Save(ctx context.Context, path string, reader io.Reader) error {
	fullPath := filepath.Join(s.basePath, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	fullPath := filepath.Join(s.basePath, path)

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// DeleteDir removes every entry under dir. Cleanup is best-effort: failures
// are logged and ignored.
func (s *LocalStorage) DeleteDir(ctx context.Context, dir string) {
	fullPath := filepath.Join(s.basePath, dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read storage directory for cleanup", "dir", fullPath, "error", err)
		}
		return
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(fullPath, entry.Name())); err != nil {
			logger.Warn("failed to delete stored file", "file", entry.Name(), "error", err)
		}
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to remove storage directory", "dir", fullPath, "error", err)
	}
}

func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.basePath, path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *LocalStorage) URL(path string) string {
	if s.baseURL == "" {
		return "/" + path
	}
	return s.baseURL + "/" + path
}
