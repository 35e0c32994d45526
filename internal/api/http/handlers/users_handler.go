package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/route-service/internal/api/dto"
	"github.com/spec-kit/route-service/internal/domain"
	"github.com/spec-kit/route-service/internal/service"
)

// UsersHandler exposes registration and user lookup endpoints.
type UsersHandler struct {
	users  *service.UserService
	logger *zap.Logger
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{users: userService, logger: logger}
}

// Register handles POST /api/save-user.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Email == "" || req.FirstName == "" || req.LastName == "" {
		return fiber.NewError(http.StatusBadRequest, "login, mail, name, surname required")
	}
	if len(req.Password) < 8 {
		return fiber.NewError(http.StatusBadRequest, "password must be at least 8 characters long")
	}

	err := h.users.Register(c.Context(), service.RegisterUserParams{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.Error("user registration failed", zap.String("username", req.Username), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString("User was not save!")
	}

	return c.Status(http.StatusCreated).SendString("User was Saved!")
}

// Check handles GET /api/check/:username.
func (h *UsersHandler) Check(c *fiber.Ctx) error {
	exists, err := h.users.Exists(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}
	if !exists {
		return c.Status(http.StatusNotFound).JSON(false)
	}
	return c.JSON(true)
}

// ByID handles GET /api/user/:idUser.
func (h *UsersHandler) ByID(c *fiber.Ctx) error {
	id := c.Params("idUser")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.users.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(toUserResponse(user))
}

// ByUsername handles GET /api/:username.
func (h *UsersHandler) ByUsername(c *fiber.Ctx) error {
	user, err := h.users.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(toUserResponse(user))
}

// Role handles GET /api/role/:username.
func (h *UsersHandler) Role(c *fiber.Ctx) error {
	hasAuthority, err := h.users.HasAuthority(c.Context(), c.Params("username"))
	if err != nil {
		return err
	}
	return c.JSON(hasAuthority)
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}
