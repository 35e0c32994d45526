package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/route-service/internal/auth"
	"github.com/spec-kit/route-service/internal/config"
	"github.com/spec-kit/route-service/internal/domain"
	"github.com/spec-kit/route-service/internal/service"
)

type stubUserRepo struct {
	user *domain.User
}

func (r *stubUserRepo) Create(context.Context, *domain.User) error { return nil }

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.user != nil && r.user.Username == username {
		return r.user, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	return r.user != nil && r.user.Username == username, nil
}

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 5,
		BcryptCost:      bcrypt.MinCost,
	}}
	authService := service.NewAuthService(cfg, &stubUserRepo{user: &domain.User{
		ID:           "3e8f7c3c-0000-4000-8000-000000000001",
		Username:     "alice",
		PasswordHash: hash,
	}})

	app := fiber.New()
	handler := NewAuthHandler(authService, zap.NewNop())
	app.Post("/api/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, payload string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestLoginReturnsToken(t *testing.T) {
	app := newLoginApp(t)

	status, body := postLogin(t, app, `{"username":"alice","password":"correct-horse"}`)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token in response")
	}
}

func TestLoginFailureIsOpaque(t *testing.T) {
	app := newLoginApp(t)

	// Wrong password and unknown user produce the same bare failure.
	for _, payload := range []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"mallory","password":"whatever"}`,
	} {
		status, body := postLogin(t, app, payload)
		if status != http.StatusInternalServerError {
			t.Fatalf("payload %s: status = %d, want 500", payload, status)
		}
		if body != "" {
			t.Fatalf("payload %s: body = %q, want empty", payload, body)
		}
	}
}
