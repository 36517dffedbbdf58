package service

import (
	"context"

	"github.com/talentra/hrm-backend/internal/model"
	"github.com/talentra/hrm-backend/internal/response"
)

// UserStore persists user records.
type UserStore interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListPaginated(ctx context.Context, limit, offset int) ([]model.User, int, error)
	Create(ctx context.Context, u *model.User) error
	UpdateProfile(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	UpdatePhoto(ctx context.Context, id int, photo *string) error
}

// UserService handles user account business logic.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email (case-sensitive match).
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.users.GetByEmail(ctx, email)
}

// List retrieves users with pagination.
func (s *UserService) List(ctx context.Context, page, perPage int) ([]model.User, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	users, total, err := s.users.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}

	if users == nil {
		users = []model.User{}
	}

	pagination := &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}

	return users, pagination, nil
}

// Create inserts a new user. The password hash must already be set.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	return s.users.Create(ctx, u)
}

// UpdateProfile overwrites the profile fields of the user row.
// Uniqueness of the new email is enforced by the storage layer and
// surfaces as repository.ErrDuplicateEmail.
func (s *UserService) UpdateProfile(ctx context.Context, u *model.User) error {
	return s.users.UpdateProfile(ctx, u)
}

// UpdatePassword stores a new password hash for the user.
func (s *UserService) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	return s.users.UpdatePassword(ctx, id, passwordHash)
}

// UpdatePhoto overwrites the avatar URL; nil clears it.
func (s *UserService) UpdatePhoto(ctx context.Context, id int, photo *string) error {
	return s.users.UpdatePhoto(ctx, id, photo)
}
