package repositories

import (
	"errors"

	"furnimarket_backend/internal/models"

	"gorm.io/gorm"
)

type CityRepository interface {
	FindByName(db *gorm.DB, name string) (*models.City, error)
	FindAll(db *gorm.DB) ([]models.City, error)
	Create(db *gorm.DB, city *models.City) error
}

type CityRepositoryImpl struct{}

func NewCityRepository() CityRepository {
	return &CityRepositoryImpl{}
}

func (r *CityRepositoryImpl) FindByName(db *gorm.DB, name string) (*models.City, error) {
	var city models.City
	err := db.First(&city, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *CityRepositoryImpl) FindAll(db *gorm.DB) ([]models.City, error) {
	var cities []models.City
	err := db.Order("name asc").Find(&cities).Error
	return cities, err
}

func (r *CityRepositoryImpl) Create(db *gorm.DB, city *models.City) error {
	return db.Create(city).Error
}
