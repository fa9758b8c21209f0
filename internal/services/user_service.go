package services

import (
	"errors"

	"furnimarket_backend/internal/appErrors"
	"furnimarket_backend/internal/filters"
	"furnimarket_backend/internal/mapper"
	"furnimarket_backend/internal/models"
	"furnimarket_backend/internal/repositories"
	"furnimarket_backend/internal/services/dto"

	"gorm.io/gorm"
)

// UserService covers registration and the admin user management surface.
type UserService struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
	adRepo   repositories.AdRepository
	mapper   *mapper.Mapper
}

func NewUserService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	adRepo repositories.AdRepository,
	m *mapper.Mapper,
) *UserService {
	return &UserService{
		db:       db,
		userRepo: userRepo,
		adRepo:   adRepo,
		mapper:   m,
	}
}

// RegisterUser creates a new account. Username is checked before email, so
// when both collide the username conflict is the one reported.
func (s *UserService) RegisterUser(in dto.UserInsertDTO) (*dto.UserReadOnlyDTO, error) {
	var created *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.userRepo.FindByUsername(tx, in.Username); err == nil {
			return appErrors.AlreadyExists("user", "username already taken: "+in.Username)
		} else if !errors.Is(err, repositories.ErrUserNotFound) {
			return err
		}

		if _, err := s.userRepo.FindByEmail(tx, in.Email); err == nil {
			return appErrors.AlreadyExists("user", "email already registered: "+in.Email)
		} else if !errors.Is(err, repositories.ErrUserNotFound) {
			return err
		}

		user, err := s.mapper.UserInsertToModel(in)
		if err != nil {
			return err
		}
		if err := s.userRepo.Create(tx, user); err != nil {
			if errors.Is(err, repositories.ErrUserAlreadyExists) {
				return appErrors.AlreadyExists("user", "username or email already registered")
			}
			return err
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := s.mapper.UserToReadOnly(created)
	return &out, nil
}

func (s *UserService) GetUserByID(id uint) (*dto.UserReadOnlyDTO, error) {
	user, err := s.userRepo.FindByID(s.db, id)
	if err != nil {
		return nil, translateUserError(err)
	}
	out := s.mapper.UserToReadOnly(user)
	return &out, nil
}

// DeleteUser removes an account. Accounts that still own ads are protected;
// the caller must remove the ads first.
func (s *UserService) DeleteUser(id uint) error {
	return s.deleteUser(func(tx *gorm.DB) (*models.User, error) {
		return s.userRepo.FindByID(tx, id)
	})
}

// DeleteUserByUsername removes the account with the given username, with
// the same ownership protection as DeleteUser.
func (s *UserService) DeleteUserByUsername(username string) error {
	return s.deleteUser(func(tx *gorm.DB) (*models.User, error) {
		return s.userRepo.FindByUsername(tx, username)
	})
}

func (s *UserService) deleteUser(find func(tx *gorm.DB) (*models.User, error)) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		user, err := find(tx)
		if err != nil {
			return translateUserError(err)
		}

		adCount, err := s.adRepo.CountByUserID(tx, user.ID)
		if err != nil {
			return err
		}
		if adCount > 0 {
			return appErrors.ReferentialIntegrity("user still owns ads and cannot be deleted")
		}

		if err := s.userRepo.Delete(tx, user); err != nil {
			if errors.Is(err, repositories.ErrUserHasAds) {
				return appErrors.ReferentialIntegrity("user still owns ads and cannot be deleted")
			}
			return translateUserError(err)
		}
		return nil
	})
}

// GetPaginatedUsers returns a page of all users ordered by id ascending.
func (s *UserService) GetPaginatedUsers(page, pageSize *int) (*filters.Paginated, error) {
	return s.GetPaginatedSortedUsers(filters.GenericFilters{Page: page, PageSize: pageSize})
}

// GetPaginatedSortedUsers returns a page of all users with caller-chosen
// order.
func (s *UserService) GetPaginatedSortedUsers(f filters.GenericFilters) (*filters.Paginated, error) {
	total, err := s.userRepo.CountAll(s.db)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindAll(s.db, f.Limit(), f.Offset(), f.OrderClause())
	if err != nil {
		return nil, err
	}
	return filters.NewPaginated(s.mapper.UsersToReadOnly(users), total, f.PageOrDefault(), f.PageSizeOrDefault()), nil
}

// GetUsersFiltered returns one page of users matching the filter criteria.
func (s *UserService) GetUsersFiltered(f filters.UserFilters) (*filters.Paginated, error) {
	users, total, err := s.userRepo.FindWithFilter(s.db, f)
	if err != nil {
		return nil, err
	}
	return filters.NewPaginated(s.mapper.UsersToReadOnly(users), total, f.PageOrDefault(), f.PageSizeOrDefault()), nil
}

// UpdateUserRole changes a user's role. Admin only.
func (s *UserService) UpdateUserRole(id uint, role models.UserRole) (*dto.UserReadOnlyDTO, error) {
	var updated *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByID(tx, id)
		if err != nil {
			return translateUserError(err)
		}
		user.Role = role
		if err := s.userRepo.Save(tx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := s.mapper.UserToReadOnly(updated)
	return &out, nil
}

func translateUserError(err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return appErrors.NotFound("user", "user not found")
	}
	return err
}
