package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Token parsing failures. A bad MAC and a garbled token are distinct
// internally even though the gate answers both with the same status.
var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// TokenManager mints and verifies HS256 identity tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttlMinutes int) *TokenManager {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// TTL returns the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Generate builds and signs a token whose subject is the username.
func (tm *TokenManager) Generate(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// ExtractUsername verifies the token signature and returns the embedded
// subject. Expiry is deliberately not enforced here; callers that care use
// IsExpired so an expired-but-authentic token stays distinguishable from a
// forged one.
func (tm *TokenManager) ExtractUsername(tokenStr string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return "", fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims.Subject, nil
}

// IsExpired reports whether the token's expiry has passed. The signature is
// not re-verified; callers must have done that first.
func (tm *TokenManager) IsExpired(tokenStr string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return !time.Now().Before(claims.ExpiresAt.Time)
}

// Validate reports whether the token is currently usable for the given
// username: the verified subject must match and the token must not be
// expired.
func (tm *TokenManager) Validate(tokenStr, username string) bool {
	subject, err := tm.ExtractUsername(tokenStr)
	if err != nil || subject != username {
		return false
	}
	return !tm.IsExpired(tokenStr)
}
