package services

import (
	"errors"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/auth"
	"furnimarket_backend/internal/mapper"
	"furnimarket_backend/internal/repositories"
	"furnimarket_backend/internal/services/dto"

	"gorm.io/gorm"
)

// AuthService exchanges credentials for bearer tokens. Unknown usernames,
// wrong passwords and deactivated accounts all produce the same
// unauthorized error so the response never reveals which check failed.
type AuthService struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	mapper   *mapper.Mapper
}

func NewAuthService(db *gorm.DB, userRepo repositories.UserRepository, m *mapper.Mapper) *AuthService {
	return &AuthService{
		db:       db,
		userRepo: userRepo,
		mapper:   m,
	}
}

func (s *AuthService) Authenticate(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(s.db, in.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrNotAuthorized
		}
		return nil, err
	}

	if user.IsActive != nil && !*user.IsActive {
		return nil, appErrors.ErrNotAuthorized
	}

	if !auth.CheckPasswordHash(in.Password, user.PasswordHash) {
		return nil, appErrors.ErrNotAuthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		User:  s.mapper.UserToReadOnly(user),
	}, nil
}
