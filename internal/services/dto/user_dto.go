package dto

import (
	"time"

	"furnimarket_backend/internal/models"
)

// UserInsertDTO is the registration payload.
type UserInsertDTO struct {
	Username  string `json:"username" validate:"required,min=2,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	FirstName string `json:"firstName" validate:"required,min=2,max=30"`
	LastName  string `json:"lastName" validate:"required,min=2,max=30"`
	Phone     string `json:"phone" validate:"required,min=5,max=20"`
}

// UserRoleUpdateDTO changes a user's role. Admin only.
type UserRoleUpdateDTO struct {
	Role models.UserRole `json:"role" validate:"required,is-user-role"`
}

// UserReadOnlyDTO is the public view of a user account. The password hash
// never leaves the service layer.
type UserReadOnlyDTO struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Role      models.UserRole `json:"role"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
