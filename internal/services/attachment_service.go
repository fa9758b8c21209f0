package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/repositories"

	"gorm.io/gorm"
)

// AttachmentService manages the single image attached to an ad: validating
// the upload, storing the bytes and keeping the attachment row in sync.
type AttachmentService struct {
	attachmentRepo repositories.AttachmentRepository
	fileService    *FileService
	maxSize        int64
	allowedExts    []string
}

func NewAttachmentService(
	attachmentRepo repositories.AttachmentRepository,
	fileService *FileService,
	maxSize int64,
	allowedExts []string,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		fileService:    fileService,
		maxSize:        maxSize,
		allowedExts:    allowedExts,
	}
}

// ValidateImageFile rejects uploads that are too large, carry a
// non-image content type or an extension outside the allow list.
func (s *AttachmentService) ValidateImageFile(header *multipart.FileHeader) error {
	if header.Size > s.maxSize {
		return appErrors.InvalidArgument(fmt.Sprintf("file exceeds the %d byte limit", s.maxSize))
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return appErrors.InvalidArgument("file must be an image")
	}

	ext := FileExtension(header.Filename)
	for _, allowed := range s.allowedExts {
		if ext == allowed {
			return nil
		}
	}
	return appErrors.InvalidArgument("unsupported image extension: " + ext)
}

// AttachImage stores the uploaded file for the ad and creates or replaces
// its attachment record. An existing image with a different extension is
// removed first so the directory never holds two files.
func (s *AttachmentService) AttachImage(ctx context.Context, db *gorm.DB, ad *models.Ad, header *multipart.FileHeader) (*models.Attachment, error) {
	if err := s.ValidateImageFile(header); err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ext := FileExtension(header.Filename)

	existing, err := s.attachmentRepo.FindByAdID(db, ad.ID)
	if err != nil && !errors.Is(err, repositories.ErrAttachmentNotFound) {
		return nil, err
	}
	if existing != nil && existing.Extension != ext {
		s.fileService.DeleteAdImage(ctx, ad.ID)
	}

	storedPath, err := s.fileService.StoreAdImage(ctx, ad.ID, ext, file)
	if err != nil {
		return nil, err
	}

	savedName := "image." + ext
	if existing != nil {
		existing.Filename = header.Filename
		existing.SavedName = savedName
		existing.FilePath = storedPath
		existing.ContentType = header.Header.Get("Content-Type")
		existing.Extension = ext
		if err := s.attachmentRepo.Save(db, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	attachment := &models.Attachment{
		AdID:        ad.ID,
		Filename:    header.Filename,
		SavedName:   savedName,
		FilePath:    storedPath,
		ContentType: header.Header.Get("Content-Type"),
		Extension:   ext,
	}
	if err := s.attachmentRepo.Create(db, attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

// DetachImage deletes the ad's attachment record, if any, and wipes its
// image directory.
func (s *AttachmentService) DetachImage(ctx context.Context, db *gorm.DB, adID uint) error {
	attachment, err := s.attachmentRepo.FindByAdID(db, adID)
	if err != nil {
		if errors.Is(err, repositories.ErrAttachmentNotFound) {
			s.fileService.DeleteAdImage(ctx, adID)
			return nil
		}
		return err
	}
	if err := s.attachmentRepo.Delete(db, attachment); err != nil {
		return err
	}
	s.fileService.DeleteAdImage(ctx, adID)
	return nil
}
