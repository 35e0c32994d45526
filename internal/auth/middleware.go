package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const principalKey = "auth_principal"

const bearerPrefix = "Bearer "

// Principal represents the identity established for one request.
type Principal struct {
	Username    string
	Authorities []string
}

// Gate inspects the Authorization header on every inbound request and
// establishes a Principal when a valid bearer token is presented.
//
// Structurally broken or unverifiable tokens terminate the request with 401.
// A missing header, or a token that is authentic but expired or bound to a
// different subject, lets the request continue without an identity; the
// route-level guard decides whether that is acceptable.
type Gate struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewGate constructs the request gate.
func NewGate(tokens *TokenManager, logger *zap.Logger) *Gate {
	return &Gate{tokens: tokens, logger: logger}
}

// Handle runs once per request, before any business handler.
func (g *Gate) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		g.logger.Debug("no bearer authorization header")
		return c.Next()
	}

	token := strings.TrimPrefix(header, bearerPrefix)

	if strings.Count(token, ".") != 2 {
		g.logger.Error("invalid jwt format", zap.String("token", token))
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid JWT format.")
	}

	username, err := g.tokens.ExtractUsername(token)
	if err != nil {
		g.logger.Error("malformed jwt token", zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).SendString("Malformed JWT token.")
	}

	if username != "" {
		if _, established := PrincipalFromContext(c); !established && g.tokens.Validate(token, username) {
			c.Locals(principalKey, &Principal{Username: username, Authorities: []string{}})
		}
	}

	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
