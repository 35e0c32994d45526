package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/route-service/internal/api/dto"
	"github.com/spec-kit/route-service/internal/auth"
	"github.com/spec-kit/route-service/internal/service"
)

// AuthHandler exposes the login endpoint and the current-identity lookup.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, logger: logger}
}

// Login handles POST /api/login. Every failure collapses to a bare 500 with
// no token; the response never reveals which sub-step failed.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.CredentialsRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Error("login payload unreadable", zap.Error(err))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	token, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("authentication failed", zap.String("username", req.Username), zap.Error(err))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	h.logger.Info("token issued", zap.String("username", req.Username))
	return c.JSON(dto.JwtResponse{Token: token})
}

// Me handles GET /api/me for authenticated callers.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}
	return c.JSON(dto.PrincipalResponse{
		Username:    principal.Username,
		Authorities: principal.Authorities,
	})
}
