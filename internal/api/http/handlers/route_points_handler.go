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

// RoutePointsHandler exposes waypoint endpoints.
type RoutePointsHandler struct {
	points *service.RoutePointService
	logger *zap.Logger
}

// NewRoutePointsHandler constructs handler.
func NewRoutePointsHandler(pointService *service.RoutePointService, logger *zap.Logger) *RoutePointsHandler {
	return &RoutePointsHandler{points: pointService, logger: logger}
}

// ByRoute handles GET /api/point/:routeId.
func (h *RoutePointsHandler) ByRoute(c *fiber.Ctx) error {
	routeID := c.Params("routeId")
	if _, err := uuid.Parse(routeID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid route id")
	}

	points, err := h.points.ListByRoute(c.Context(), routeID)
	if err != nil {
		return err
	}

	responses := make([]dto.RoutePointResponse, 0, len(points))
	for _, point := range points {
		responses = append(responses, toRoutePointResponse(point))
	}
	return c.JSON(responses)
}

// Set handles POST /api/set-point.
func (h *RoutePointsHandler) Set(c *fiber.Ctx) error {
	var req dto.RoutePointRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).SendString("Point was not set!")
	}
	if _, err := uuid.Parse(req.RouteID); err != nil {
		return c.Status(http.StatusBadRequest).SendString("Point was not set!")
	}

	err := h.points.Add(c.Context(), service.AddRoutePointParams{
		RouteID:     req.RouteID,
		Name:        req.Name,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		h.logger.Error("waypoint save failed", zap.String("route_id", req.RouteID), zap.Error(err))
		return c.Status(http.StatusBadRequest).SendString("Point was not set!")
	}
	return c.Status(http.StatusCreated).SendString("Point was set!")
}

func toRoutePointResponse(point domain.RoutePoint) dto.RoutePointResponse {
	return dto.RoutePointResponse{
		ID:          point.ID,
		RouteID:     point.RouteID,
		Name:        point.Name,
		Description: point.Description,
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
		CreatedAt:   point.CreatedAt,
	}
}
