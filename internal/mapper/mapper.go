// Package mapper converts between domain entities and API DTOs. Lookups of
// reference entities by name happen here so services receive fully resolved
// models.
package mapper

import (
	"errors"
	"strings"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/auth"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/repositories"
	"furnimarket_backend/internal/services/dto"

	"gorm.io/gorm"
)

type Mapper struct {
	categoryRepo repositories.CategoryRepository
	cityRepo     repositories.CityRepository
	imageURL     func(storedPath string) string
}

// NewMapper takes the reference repositories plus the function that maps a
// stored image path to its public URL.
func NewMapper(categoryRepo repositories.CategoryRepository, cityRepo repositories.CityRepository, imageURL func(string) string) *Mapper {
	return &Mapper{
		categoryRepo: categoryRepo,
		cityRepo:     cityRepo,
		imageURL:     imageURL,
	}
}

// AdInsertToModel resolves the named category and city and builds a new Ad.
// An unknown name maps to a NOT_FOUND error naming the reference table.
func (m *Mapper) AdInsertToModel(db *gorm.DB, in dto.AdInsertDTO, userID uint) (*models.Ad, error) {
	category, err := m.resolveCategory(db, in.CategoryName)
	if err != nil {
		return nil, err
	}
	city, err := m.resolveCity(db, in.CityName)
	if err != nil {
		return nil, err
	}

	isAvailable := true
	if in.IsAvailable != nil {
		isAvailable = *in.IsAvailable
	}

	return &models.Ad{
		Title:       in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Condition:   in.Condition,
		IsAvailable: &isAvailable,
		CategoryID:  category.ID,
		CityID:      city.ID,
		UserID:      userID,
	}, nil
}

// ApplyAdInsert copies updatable fields from the DTO onto an existing ad,
// re-resolving category and city by name.
func (m *Mapper) ApplyAdInsert(db *gorm.DB, ad *models.Ad, in dto.AdInsertDTO) error {
	category, err := m.resolveCategory(db, in.CategoryName)
	if err != nil {
		return err
	}
	city, err := m.resolveCity(db, in.CityName)
	if err != nil {
		return err
	}

	ad.Title = in.Title
	ad.Description = in.Description
	ad.Price = *in.Price
	ad.Condition = in.Condition
	if in.IsAvailable != nil {
		ad.IsAvailable = in.IsAvailable
	}
	ad.CategoryID = category.ID
	ad.CityID = city.ID
	return nil
}

// AdToReadOnly flattens an ad with its preloaded relations into the public
// view. Missing relations simply leave their fields empty.
func (m *Mapper) AdToReadOnly(ad *models.Ad) dto.AdReadOnlyDTO {
	out := dto.AdReadOnlyDTO{
		ID:          ad.ID,
		Title:       ad.Title,
		Description: ad.Description,
		Price:       ad.Price,
		Condition:   ad.Condition,
		CreatedAt:   ad.CreatedAt,
		UpdatedAt:   ad.UpdatedAt,
	}
	if ad.IsAvailable != nil {
		out.IsAvailable = *ad.IsAvailable
	}
	if ad.Category.ID != 0 {
		out.Category = &dto.NamedRef{ID: ad.Category.ID, Name: ad.Category.Name}
	}
	if ad.City.ID != 0 {
		out.City = &dto.NamedRef{ID: ad.City.ID, Name: ad.City.Name}
	}
	if ad.Image != nil {
		out.ImagePath = m.imageURL(ad.Image.FilePath)
	}
	if ad.User.ID != 0 {
		out.UserFirstName = ad.User.FirstName
		out.UserLastName = ad.User.LastName
		out.UserPhone = ad.User.Phone
	}
	return out
}

func (m *Mapper) AdsToReadOnly(ads []models.Ad) []dto.AdReadOnlyDTO {
	out := make([]dto.AdReadOnlyDTO, 0, len(ads))
	for i := range ads {
		out = append(out, m.AdToReadOnly(&ads[i]))
	}
	return out
}

// UserInsertToModel hashes the password and builds a new account with the
// default role and active flag.
func (m *Mapper) UserInsertToModel(in dto.UserInsertDTO) (*models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	isActive := true
	return &models.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         models.UserRoleUser,
		IsActive:     &isActive,
	}, nil
}

func (m *Mapper) UserToReadOnly(user *models.User) dto.UserReadOnlyDTO {
	out := dto.UserReadOnlyDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.IsActive != nil {
		out.IsActive = *user.IsActive
	}
	return out
}

func (m *Mapper) UsersToReadOnly(users []models.User) []dto.UserReadOnlyDTO {
	out := make([]dto.UserReadOnlyDTO, 0, len(users))
	for i := range users {
		out = append(out, m.UserToReadOnly(&users[i]))
	}
	return out
}

func (m *Mapper) resolveCategory(db *gorm.DB, name string) (*models.Category, error) {
	category, err := m.categoryRepo.FindByName(db, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, appErrors.NotFound("category", "category not found: "+name)
		}
		return nil, err
	}
	return category, nil
}

func (m *Mapper) resolveCity(db *gorm.DB, name string) (*models.City, error) {
	city, err := m.cityRepo.FindByName(db, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, repositories.ErrCityNotFound) {
			return nil, appErrors.NotFound("city", "city not found: "+name)
		}
		return nil, err
	}
	return city, nil
}
