package repositories

import (
	"errors"

	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/specifications"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.Ad, error)
	Create(db *gorm.DB, ad *models.Ad) error
	Save(db *gorm.DB, ad *models.Ad) error
	Delete(db *gorm.DB, ad *models.Ad) error
	FindByIsAvailableTrue(db *gorm.DB) ([]models.Ad, error)
	FindByUserID(db *gorm.DB, userID uint) ([]models.Ad, error)
	FindAll(db *gorm.DB, limit, offset int, order string) ([]models.Ad, error)
	CountAll(db *gorm.DB) (int64, error)
	CountByUserID(db *gorm.DB, userID uint) (int64, error)
	FindWithFilter(db *gorm.DB, spec specifications.Specification) ([]models.Ad, error)
	FindWithFilterPaginated(db *gorm.DB, spec specifications.Specification, order string, limit, offset int) ([]models.Ad, int64, error)
}

type AdRepositoryImpl struct{}

func NewAdRepository() AdRepository {
	return &AdRepositoryImpl{}
}

// withRelations preloads everything a read model needs in one place so
// every read path returns fully hydrated ads.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("City").
		Preload("User").
		Preload("Image")
}

func (r *AdRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Ad, error) {
	var ad models.Ad
	err := withRelations(db).First(&ad, "ads.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, err
	}
	return &ad, nil
}

// Create and Save write only the ad row itself. Relations are managed by
// their own repositories, so association writes are omitted.
func (r *AdRepositoryImpl) Create(db *gorm.DB, ad *models.Ad) error {
	return db.Omit(clause.Associations).Create(ad).Error
}

func (r *AdRepositoryImpl) Save(db *gorm.DB, ad *models.Ad) error {
	return db.Omit(clause.Associations).Save(ad).Error
}

func (r *AdRepositoryImpl) Delete(db *gorm.DB, ad *models.Ad) error {
	result := db.Delete(ad)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdNotFound
	}
	return nil
}

func (r *AdRepositoryImpl) FindByIsAvailableTrue(db *gorm.DB) ([]models.Ad, error) {
	var ads []models.Ad
	err := withRelations(db).Where("is_available = ?", true).Find(&ads).Error
	return ads, err
}

func (r *AdRepositoryImpl) FindByUserID(db *gorm.DB, userID uint) ([]models.Ad, error) {
	var ads []models.Ad
	err := withRelations(db).Where("user_id = ?", userID).Find(&ads).Error
	return ads, err
}

func (r *AdRepositoryImpl) FindAll(db *gorm.DB, limit, offset int, order string) ([]models.Ad, error) {
	var ads []models.Ad
	err := withRelations(db).Order(order).Limit(limit).Offset(offset).Find(&ads).Error
	return ads, err
}

func (r *AdRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Ad{}).Count(&count).Error
	return count, err
}

func (r *AdRepositoryImpl) CountByUserID(db *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Ad{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *AdRepositoryImpl) FindWithFilter(db *gorm.DB, spec specifications.Specification) ([]models.Ad, error) {
	var ads []models.Ad
	err := withRelations(db.Model(&models.Ad{})).Scopes(spec).Find(&ads).Error
	return ads, err
}

func (r *AdRepositoryImpl) FindWithFilterPaginated(db *gorm.DB, spec specifications.Specification, order string, limit, offset int) ([]models.Ad, int64, error) {
	var total int64
	if err := db.Model(&models.Ad{}).Scopes(spec).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ads []models.Ad
	err := withRelations(db.Model(&models.Ad{})).Scopes(spec).
		Order(order).Limit(limit).Offset(offset).
		Find(&ads).Error

	return ads, total, err
}
