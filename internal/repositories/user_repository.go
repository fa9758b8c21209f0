package repositories

import (
	"errors"

	"furnimarket_backend/internal/filters"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/specifications"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	Save(db *gorm.DB, user *models.User) error
	Delete(db *gorm.DB, user *models.User) error
	FindAll(db *gorm.DB, limit, offset int, order string) ([]models.User, error)
	CountAll(db *gorm.DB) (int64, error)
	FindWithFilter(db *gorm.DB, f filters.UserFilters) ([]models.User, int64, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create persists a new user. A uniqueness violation surfaced by the
// database is translated to ErrUserAlreadyExists so races between the
// pre-check and the write still report the same condition.
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) Save(db *gorm.DB, user *models.User) error {
	return db.Save(user).Error
}

func (r *UserRepositoryImpl) Delete(db *gorm.DB, user *models.User) error {
	result := db.Delete(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return ErrUserHasAds
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB, limit, offset int, order string) ([]models.User, error) {
	var users []models.User
	err := db.Order(order).Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) FindWithFilter(db *gorm.DB, f filters.UserFilters) ([]models.User, int64, error) {
	spec := specifications.Compose(
		specifications.UserUsernameLike(f.Username),
		specifications.UserFirstNameLike(f.FirstName),
		specifications.UserLastNameLike(f.LastName),
		specifications.UserEmailIs(f.Email),
		specifications.UserPhoneIs(f.Phone),
		specifications.UserRoleIs(f.Role),
		specifications.UserIsActive(f.IsActive),
	)

	var total int64
	if err := db.Model(&models.User{}).Scopes(spec).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := db.Model(&models.User{}).Scopes(spec).
		Order(f.OrderClause()).Limit(f.Limit()).Offset(f.Offset()).
		Find(&users).Error

	return users, total, err
}
