package repositories

import (
	"errors"

	"furnimarket_backend/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindByName(db *gorm.DB, name string) (*models.Category, error)
	FindAll(db *gorm.DB) ([]models.Category, error)
	Create(db *gorm.DB, category *models.Category) error
}

type CategoryRepositoryImpl struct{}

func NewCategoryRepository() CategoryRepository {
	return &CategoryRepositoryImpl{}
}

func (r *CategoryRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	err := db.First(&category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FindAll(db *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	err := db.Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Create(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}
