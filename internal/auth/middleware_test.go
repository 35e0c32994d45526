package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newGateApp(t *testing.T, tm *TokenManager) *fiber.App {
	t.Helper()
	app := fiber.New()
	gate := NewGate(tm, zap.NewNop())
	app.Use(gate.Handle)
	app.Get("/open", func(c *fiber.Ctx) error {
		if principal, ok := PrincipalFromContext(c); ok {
			return c.SendString("user:" + principal.Username)
		}
		return c.SendString("anonymous")
	})
	app.Get("/protected", RequireAuthenticated(), func(c *fiber.Ctx) error {
		return c.SendString("secret")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
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

func TestGateNoHeaderProceedsAnonymous(t *testing.T) {
	app := newGateApp(t, newTestManager())

	status, body := doRequest(t, app, "/open", "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body != "anonymous" {
		t.Fatalf("body = %q, want anonymous", body)
	}
}

func TestGateNonBearerHeaderProceedsAnonymous(t *testing.T) {
	app := newGateApp(t, newTestManager())

	status, body := doRequest(t, app, "/open", "Basic dXNlcjpwYXNz")
	if status != http.StatusOK || body != "anonymous" {
		t.Fatalf("got %d %q, want 200 anonymous", status, body)
	}
}

func TestGateRejectsWrongSegmentCount(t *testing.T) {
	app := newGateApp(t, newTestManager())

	for _, token := range []string{"abc.def", "abc", "a.b.c.d"} {
		status, body := doRequest(t, app, "/open", "Bearer "+token)
		if status != http.StatusUnauthorized {
			t.Fatalf("token %q: status = %d, want 401", token, status)
		}
		if body != "Invalid JWT format." {
			t.Fatalf("token %q: body = %q, want Invalid JWT format.", token, body)
		}
	}
}

func TestGateRejectsUnverifiableToken(t *testing.T) {
	tm := newTestManager()
	app := newGateApp(t, tm)

	forged := signToken(t, "other-secret", "alice", time.Now(), time.Now().Add(time.Hour))

	for _, token := range []string{"aa.bb.cc", forged} {
		status, body := doRequest(t, app, "/open", "Bearer "+token)
		if status != http.StatusUnauthorized {
			t.Fatalf("token %q: status = %d, want 401", token, status)
		}
		if body != "Malformed JWT token." {
			t.Fatalf("token %q: body = %q, want Malformed JWT token.", token, body)
		}
	}
}

func TestGateEstablishesPrincipal(t *testing.T) {
	tm := newTestManager()
	app := newGateApp(t, tm)

	token, err := tm.Generate("alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	status, body := doRequest(t, app, "/open", "Bearer "+token)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body != "user:alice" {
		t.Fatalf("body = %q, want user:alice", body)
	}
}

func TestGateExpiredTokenProceedsAnonymous(t *testing.T) {
	tm := newTestManager()
	app := newGateApp(t, tm)

	expired := signToken(t, testSecret, "alice", time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))

	status, body := doRequest(t, app, "/open", "Bearer "+expired)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if body != "anonymous" {
		t.Fatalf("body = %q, want anonymous", body)
	}
}

func TestRequireAuthenticated(t *testing.T) {
	tm := newTestManager()
	app := newGateApp(t, tm)

	status, _ := doRequest(t, app, "/protected", "")
	if status != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", status)
	}

	token, err := tm.Generate("alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	status, body := doRequest(t, app, "/protected", "Bearer "+token)
	if status != http.StatusOK || body != "secret" {
		t.Fatalf("got %d %q, want 200 secret", status, body)
	}
}
