package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"furnimarket_backend/internal/storage"
)

const defaultImageExtension = "jpg"

// FileService places ad images on the storage backend. Every ad keeps its
// image under its own directory so removal is a single directory wipe.
type FileService struct {
	storage storage.Storage
}

func NewFileService(st storage.Storage) *FileService {
	return &FileService{storage: st}
}

// FileExtension extracts the lower-cased extension of the original
// filename, without the dot. A filename with no extension yields the
// default "jpg".
func FileExtension(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		return defaultImageExtension
	}
	return strings.ToLower(ext)
}

// AdImagePath returns the storage path of an ad's image.
func AdImagePath(adID uint, ext string) string {
	return fmt.Sprintf("ads/%d/image.%s", adID, ext)
}

// StoreAdImage writes the image content to the ad's directory and returns
// the stored relative path.
func (s *FileService) StoreAdImage(ctx context.Context, adID uint, ext string, content io.Reader) (string, error) {
	p := AdImagePath(adID, ext)
	if err := s.storage.Save(ctx, p, content); err != nil {
		return "", err
	}
	return p, nil
}

// DeleteAdImage removes the ad's image directory. Cleanup is best-effort
// and never fails the calling operation.
func (s *FileService) DeleteAdImage(ctx context.Context, adID uint) {
	s.storage.DeleteDir(ctx, fmt.Sprintf("ads/%d", adID))
}

// ImageURL maps a stored path to its public URL.
func (s *FileService) ImageURL(p string) string {
	return s.storage.URL(p)
}
