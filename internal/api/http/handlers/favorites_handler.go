package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/route-service/internal/api/dto"
	"github.com/spec-kit/route-service/internal/service"
)

// FavoritesHandler exposes favorite-route endpoints.
type FavoritesHandler struct {
	favorites *service.FavoriteService
	logger    *zap.Logger
}

// NewFavoritesHandler constructs handler.
func NewFavoritesHandler(favoriteService *service.FavoriteService, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{favorites: favoriteService, logger: logger}
}

// Add handles POST /api/add.
func (h *FavoritesHandler) Add(c *fiber.Ctx) error {
	var req dto.FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if _, err := uuid.Parse(req.RouteID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid routeId")
	}
	if _, err := uuid.Parse(req.UserID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid userId")
	}

	if err := h.favorites.Add(c.Context(), req.RouteID, req.UserID); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).SendString("Favorite route was saved!")
}

// Delete handles DELETE /api/delete.
func (h *FavoritesHandler) Delete(c *fiber.Ctx) error {
	routeID := c.Query("routeId")
	userID := c.Query("userId")
	if _, err := uuid.Parse(routeID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid routeId")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid userId")
	}

	if err := h.favorites.Remove(c.Context(), routeID, userID); err != nil {
		return err
	}
	return c.SendString("Favorite route was deleted!")
}

// List handles GET /api/list.
func (h *FavoritesHandler) List(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if _, err := uuid.Parse(userID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid userId")
	}

	ids, err := h.favorites.ListRouteIDs(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(ids)
}

// RoutesByIDs handles GET /api/routes-by-ids with a comma separated routeIds
// query parameter.
func (h *FavoritesHandler) RoutesByIDs(c *fiber.Ctx) error {
	raw := c.Query("routeIds")
	ids := []string{}
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid route id: "+id)
		}
		ids = append(ids, id)
	}

	routes, err := h.favorites.RouteDetails(c.Context(), ids)
	if err != nil {
		return err
	}
	return c.JSON(toRouteResponses(routes))
}
