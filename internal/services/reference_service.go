package services

import (
	"errors"
	"fmt"

	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/repositories"
	"furnimarket_backend/internal/services/dto"

	"gorm.io/gorm"
)

// ReferenceService exposes the category and city reference data and seeds
// the default rows on first start.
type ReferenceService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepository
	cityRepo     repositories.CityRepository
}

func NewReferenceService(db *gorm.DB, categoryRepo repositories.CategoryRepository, cityRepo repositories.CityRepository) *ReferenceService {
	return &ReferenceService{
		db:           db,
		categoryRepo: categoryRepo,
		cityRepo:     cityRepo,
	}
}

// GetCategories returns every category, ordered by name.
func (s *ReferenceService) GetCategories() ([]dto.NamedRef, error) {
	categories, err := s.categoryRepo.FindAll(s.db)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedRef, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.NamedRef{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// GetCities returns every city, ordered by name.
func (s *ReferenceService) GetCities() ([]dto.NamedRef, error) {
	cities, err := s.cityRepo.FindAll(s.db)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedRef, 0, len(cities))
	for _, c := range cities {
		out = append(out, dto.NamedRef{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// SeedDefaults inserts the given category and city names if they do not
// exist yet. Existing rows are left untouched.
func (s *ReferenceService) SeedDefaults(categoryNames, cityNames []string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range categoryNames {
			_, err := s.categoryRepo.FindByName(tx, name)
			if errors.Is(err, repositories.ErrCategoryNotFound) {
				if err := s.categoryRepo.Create(tx, &models.Category{Name: name}); err != nil {
					return fmt.Errorf("seed category %q: %w", name, err)
				}
			} else if err != nil {
				return err
			}
		}
		for _, name := range cityNames {
			_, err := s.cityRepo.FindByName(tx, name)
			if errors.Is(err, repositories.ErrCityNotFound) {
				if err := s.cityRepo.Create(tx, &models.City{Name: name}); err != nil {
					return fmt.Errorf("seed city %q: %w", name, err)
				}
			} else if err != nil {
				return err
			}
		}
		return nil
	})
}
