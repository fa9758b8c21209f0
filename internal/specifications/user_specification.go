package specifications

import (
	"strings"

	"furnimarket_backend/internal/models"

	"gorm.io/gorm"
)

// UserUsernameLike matches users whose username contains the given text,
// case-insensitively.
func UserUsernameLike(username string) Specification {
	if strings.TrimSpace(username) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(users.username) LIKE ?", containsPattern(username))
	}
}

func UserFirstNameLike(firstName string) Specification {
	if strings.TrimSpace(firstName) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(users.first_name) LIKE ?", containsPattern(firstName))
	}
}

func UserLastNameLike(lastName string) Specification {
	if strings.TrimSpace(lastName) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(users.last_name) LIKE ?", containsPattern(lastName))
	}
}

// UserEmailIs matches users by exact email.
func UserEmailIs(email string) Specification {
	if strings.TrimSpace(email) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("users.email = ?", email)
	}
}

func UserPhoneIs(phone string) Specification {
	if strings.TrimSpace(phone) == "" {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("users.phone = ?", phone)
	}
}

func UserRoleIs(role *models.UserRole) Specification {
	if role == nil {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("users.role = ?", *role)
	}
}

func UserIsActive(isActive *bool) Specification {
	if isActive == nil {
		return matchAll
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("users.is_active = ?", *isActive)
	}
}
