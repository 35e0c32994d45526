package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/route-service/internal/auth"
	"github.com/spec-kit/route-service/internal/config"
	"github.com/spec-kit/route-service/internal/repository"
)

// ErrBadCredentials is the only credential failure callers see. Unknown
// username and wrong password both unwrap to it so the login surface never
// reveals which one happened.
var ErrBadCredentials = errors.New("bad credentials")

var errUserNotFound = fmt.Errorf("%w: user not found", ErrBadCredentials)

// AuthService verifies credentials and mints identity tokens.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinutes),
	}
}

// Authenticate checks the presented credentials against the stored record
// and returns the resulting principal.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*auth.Principal, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrBadCredentials
	}
	return &auth.Principal{Username: user.Username, Authorities: []string{}}, nil
}

// Login verifies credentials and mints a token for the username.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	principal, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.tokenMgr.Generate(principal.Username)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
