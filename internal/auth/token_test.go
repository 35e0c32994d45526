package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func newTestManager() *TokenManager {
	return NewTokenManager(testSecret, 60)
}

// signToken builds a token with arbitrary claims for edge cases the manager
// itself would never produce.
func signToken(t *testing.T, secret, subject string, issuedAt, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestGenerateExtractRoundTrip(t *testing.T) {
	tm := newTestManager()

	for _, username := range []string{"alice", "bob", "user-with-dash"} {
		token, err := tm.Generate(username)
		if err != nil {
			t.Fatalf("Generate(%q): %v", username, err)
		}
		subject, err := tm.ExtractUsername(token)
		if err != nil {
			t.Fatalf("ExtractUsername: %v", err)
		}
		if subject != username {
			t.Fatalf("subject = %q, want %q", subject, username)
		}
	}
}

func TestExtractUsernameRejectsWrongSecret(t *testing.T) {
	tm := newTestManager()
	forged := signToken(t, "other-secret", "alice", time.Now(), time.Now().Add(time.Hour))

	_, err := tm.ExtractUsername(forged)
	if err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("error = %v, want ErrInvalidSignature", err)
	}
}

func TestExtractUsernameRejectsGarbage(t *testing.T) {
	tm := newTestManager()

	for _, input := range []string{"", "aa.bb.cc", "not-a-token", "eyJhbGciOiJIUzI1NiJ9.%%%.sig"} {
		_, err := tm.ExtractUsername(input)
		if err == nil {
			t.Fatalf("ExtractUsername(%q): expected error", input)
		}
		if !errors.Is(err, ErrMalformedToken) {
			t.Fatalf("ExtractUsername(%q) error = %v, want ErrMalformedToken", input, err)
		}
	}
}

func TestExtractUsernameIgnoresExpiry(t *testing.T) {
	tm := newTestManager()
	expired := signToken(t, testSecret, "alice", time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))

	subject, err := tm.ExtractUsername(expired)
	if err != nil {
		t.Fatalf("ExtractUsername on expired token: %v", err)
	}
	if subject != "alice" {
		t.Fatalf("subject = %q, want alice", subject)
	}
}

func TestIsExpired(t *testing.T) {
	tm := newTestManager()

	fresh, err := tm.Generate("alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if tm.IsExpired(fresh) {
		t.Fatal("fresh token reported expired")
	}

	expired := signToken(t, testSecret, "alice", time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))
	if !tm.IsExpired(expired) {
		t.Fatal("expired token reported valid")
	}

	noExp := func() string {
		claims := jwt.RegisteredClaims{Subject: "alice"}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		return token
	}()
	if !tm.IsExpired(noExp) {
		t.Fatal("token without exp claim reported valid")
	}
}

func TestValidate(t *testing.T) {
	tm := newTestManager()

	token, err := tm.Generate("alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !tm.Validate(token, "alice") {
		t.Fatal("valid token for alice rejected")
	}
	if tm.Validate(token, "bob") {
		t.Fatal("token for alice accepted for bob")
	}

	expired := signToken(t, testSecret, "alice", time.Now().Add(-2*time.Hour), time.Now().Add(-time.Hour))
	if tm.Validate(expired, "alice") {
		t.Fatal("expired token accepted")
	}

	forged := signToken(t, "other-secret", "alice", time.Now(), time.Now().Add(time.Hour))
	if tm.Validate(forged, "alice") {
		t.Fatal("forged token accepted")
	}
}
