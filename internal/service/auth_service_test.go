package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/route-service/internal/auth"
	"github.com/spec-kit/route-service/internal/config"
	"github.com/spec-kit/route-service/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.Username] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLMinutes: 5,
			BcryptCost:      bcrypt.MinCost,
		},
	}
}

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	repo := &fakeUserRepo{users: map[string]*domain.User{
		"alice": {
			ID:           "3e8f7c3c-0000-4000-8000-000000000001",
			Username:     "alice",
			PasswordHash: hash,
			Role:         domain.UserRoleUser,
		},
	}}
	return NewAuthService(testConfig(), repo), repo
}

func TestLoginIssuesTokenForValidCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	token, err := svc.Login(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	subject, err := svc.TokenManager().ExtractUsername(token)
	if err != nil {
		t.Fatalf("ExtractUsername: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject = %q, want alice", subject)
	}
	if !svc.TokenManager().Validate(token, "alice") {
		t.Fatal("freshly issued token failed validation")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	token, err := svc.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("error = %v, want ErrBadCredentials", err)
	}
	if token != "" {
		t.Fatal("token returned despite failed login")
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	// Unknown username and wrong password must be indistinguishable to callers.
	_, err := svc.Login(context.Background(), "mallory", "whatever")
	if !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("error = %v, want ErrBadCredentials", err)
	}
}

func TestAuthenticateReturnsPrincipalWithEmptyAuthorities(t *testing.T) {
	svc, _ := newAuthFixture(t)

	principal, err := svc.Authenticate(context.Background(), "alice", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if principal.Username != "alice" {
		t.Fatalf("username = %q, want alice", principal.Username)
	}
	if len(principal.Authorities) != 0 {
		t.Fatalf("authorities = %v, want empty", principal.Authorities)
	}
}
