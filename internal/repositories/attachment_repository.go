package repositories

import (
	"errors"

	"furnimarket_backend/internal/models"

	"gorm.io/gorm"
)

type AttachmentRepository interface {
	FindByAdID(db *gorm.DB, adID uint) (*models.Attachment, error)
	Create(db *gorm.DB, attachment *models.Attachment) error
	Save(db *gorm.DB, attachment *models.Attachment) error
	Delete(db *gorm.DB, attachment *models.Attachment) error
}

type AttachmentRepositoryImpl struct{}

func NewAttachmentRepository() AttachmentRepository {
	return &AttachmentRepositoryImpl{}
}

func (r *AttachmentRepositoryImpl) FindByAdID(db *gorm.DB, adID uint) (*models.Attachment, error) {
	var attachment models.Attachment
	err := db.First(&attachment, "ad_id = ?", adID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, err
	}
	return &attachment, nil
}

func (r *AttachmentRepositoryImpl) Create(db *gorm.DB, attachment *models.Attachment) error {
	return db.Create(attachment).Error
}

func (r *AttachmentRepositoryImpl) Save(db *gorm.DB, attachment *models.Attachment) error {
	return db.Save(attachment).Error
}

func (r *AttachmentRepositoryImpl) Delete(db *gorm.DB, attachment *models.Attachment) error {
	result := db.Delete(attachment)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAttachmentNotFound
	}
	return nil
}
