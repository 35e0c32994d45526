package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/route-service/internal/auth"
	"github.com/spec-kit/route-service/internal/config"
	"github.com/spec-kit/route-service/internal/domain"
	"github.com/spec-kit/route-service/internal/repository"
	apperrors "github.com/spec-kit/route-service/pkg/util"
)

// RegisterUserParams carries the fields of a registration request.
type RegisterUserParams struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// UserService coordinates account registration and lookups.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository) *UserService {
	return &UserService{users: users, bcryptCost: cfg.Auth.BcryptCost}
}

// Register creates a new account with a hashed password and the default role.
func (s *UserService) Register(ctx context.Context, params RegisterUserParams) error {
	exists, err := s.users.ExistsByUsername(ctx, params.Username)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewConflict("username already registered", nil)
	}

	hash, err := auth.HashPassword(params.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     params.Username,
		Email:        params.Email,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: hash,
		Role:         domain.UserRoleUser,
	}
	return s.users.Create(ctx, user)
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// GetByUsername returns the user with the given name.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// Exists reports whether a user with the given name is registered.
func (s *UserService) Exists(ctx context.Context, username string) (bool, error) {
	return s.users.ExistsByUsername(ctx, username)
}

// HasAuthority reports whether the named user holds the admin role.
func (s *UserService) HasAuthority(ctx context.Context, username string) (bool, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return user.Role == domain.UserRoleAdmin, nil
}
