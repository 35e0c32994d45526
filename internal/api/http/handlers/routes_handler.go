package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/route-service/internal/api/dto"
	"github.com/spec-kit/route-service/internal/domain"
	"github.com/spec-kit/route-service/internal/repository"
	"github.com/spec-kit/route-service/internal/service"
)

// RoutesHandler exposes route CRUD, search and image endpoints.
type RoutesHandler struct {
	routes *service.RouteService
	logger *zap.Logger
}

// NewRoutesHandler constructs handler.
func NewRoutesHandler(routeService *service.RouteService, logger *zap.Logger) *RoutesHandler {
	return &RoutesHandler{routes: routeService, logger: logger}
}

// ByUser handles GET /api/route/:userId.
func (h *RoutesHandler) ByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if _, err := uuid.Parse(userID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid user id")
	}

	routes, err := h.routes.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(toRouteResponses(routes))
}

// Details handles GET /api/route/details/:routeId.
func (h *RoutesHandler) Details(c *fiber.Ctx) error {
	routeID := c.Params("routeId")
	if _, err := uuid.Parse(routeID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid route id")
	}

	route, err := h.routes.Get(c.Context(), routeID)
	if err != nil {
		return err
	}
	return c.JSON(toRouteResponse(*route))
}

// All handles GET /api/all-route.
func (h *RoutesHandler) All(c *fiber.Ctx) error {
	routes, err := h.routes.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(toRouteResponses(routes))
}

// Search handles GET /api/route/search.
func (h *RoutesHandler) Search(c *fiber.Ctx) error {
	startLocation := c.Query("startLocation")
	endLocation := c.Query("endLocation")
	if startLocation == "" || endLocation == "" {
		return fiber.NewError(http.StatusBadRequest, "startLocation and endLocation required")
	}

	routes, err := h.routes.Search(c.Context(), startLocation, endLocation)
	if err != nil {
		return err
	}
	return c.JSON(toRouteResponses(routes))
}

// Save handles POST /api/save-route. The body is a multipart form carrying
// the route fields, the finish image file, and the waypoints as a JSON array
// in the points field.
func (h *RoutesHandler) Save(c *fiber.Ctx) error {
	params, err := h.parseRouteForm(c)
	if err != nil {
		return c.Status(http.StatusInternalServerError).SendString(err.Error())
	}

	routeID, err := h.routes.Create(c.Context(), params)
	if err != nil {
		h.logger.Error("route save failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString(err.Error())
	}

	h.logger.Info("route saved", zap.String("route_id", routeID))
	return c.Status(http.StatusCreated).SendString("Route was Saved! ")
}

// Delete handles DELETE /api/delete-route/:routeId.
func (h *RoutesHandler) Delete(c *fiber.Ctx) error {
	routeID := c.Params("routeId")
	if _, err := uuid.Parse(routeID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid route id")
	}

	if _, err := h.routes.Delete(c.Context(), routeID); err != nil {
		h.logger.Error("route delete failed", zap.String("route_id", routeID), zap.Error(err))
		return c.Status(http.StatusNoContent).SendString(err.Error())
	}
	return c.SendString("Route was Deleted! ")
}

// Image handles GET /api/route/:routeId/image.
func (h *RoutesHandler) Image(c *fiber.Ctx) error {
	routeID := c.Params("routeId")
	if _, err := uuid.Parse(routeID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid route id")
	}

	data, contentType, err := h.routes.Image(c.Context(), routeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.SendStatus(http.StatusNotFound)
		}
		return err
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

// Update handles PUT /api/put/:idRoute.
func (h *RoutesHandler) Update(c *fiber.Ctx) error {
	routeID := c.Params("idRoute")
	if _, err := uuid.Parse(routeID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid route id")
	}

	var req dto.RouteUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	err := h.routes.Update(c.Context(), routeID, repository.RouteUpdate{
		Description:   req.Description,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(http.StatusNotFound).SendString("Route not found with id: " + routeID)
		}
		return c.Status(http.StatusInternalServerError).SendString("Error updating route: " + err.Error())
	}
	return c.SendString("Route was successfully updated")
}

func (h *RoutesHandler) parseRouteForm(c *fiber.Ctx) (service.CreateRouteParams, error) {
	params := service.CreateRouteParams{
		Name:          c.FormValue("name"),
		Description:   c.FormValue("description"),
		UserID:        c.FormValue("userId"),
		StartLocation: c.FormValue("startLocation"),
		EndLocation:   c.FormValue("endLocation"),
		PointsJSON:    c.FormValue("points"),
	}

	for _, field := range []struct {
		name string
		dst  *float64
	}{
		{"startLat", &params.StartLat},
		{"startLng", &params.StartLng},
		{"endLat", &params.EndLat},
		{"endLng", &params.EndLng},
	} {
		value, err := strconv.ParseFloat(c.FormValue(field.name), 64)
		if err != nil {
			return params, errors.New("invalid " + field.name)
		}
		*field.dst = value
	}

	if _, err := uuid.Parse(params.UserID); err != nil {
		return params, errors.New("invalid userId")
	}

	if createdAt := c.FormValue("createdAt"); createdAt != "" {
		parsed, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return params, errors.New("invalid createdAt")
		}
		params.CreatedAt = &parsed
	}

	file, err := c.FormFile("finishImage")
	if err != nil {
		return params, errors.New("finishImage required")
	}
	opened, err := file.Open()
	if err != nil {
		return params, err
	}
	defer opened.Close()

	params.FinishImage, err = io.ReadAll(opened)
	if err != nil {
		return params, err
	}
	return params, nil
}

func toRouteResponse(route domain.Route) dto.RouteResponse {
	return dto.RouteResponse{
		ID:            route.ID,
		Name:          route.Name,
		Description:   route.Description,
		StartLat:      route.StartLat,
		StartLng:      route.StartLng,
		EndLat:        route.EndLat,
		EndLng:        route.EndLng,
		UserID:        route.UserID,
		CreatedAt:     route.CreatedAt,
		UpdatedAt:     route.UpdatedAt,
		StartLocation: route.StartLocation,
		EndLocation:   route.EndLocation,
	}
}

func toRouteResponses(routes []domain.Route) []dto.RouteResponse {
	responses := make([]dto.RouteResponse, 0, len(routes))
	for _, route := range routes {
		responses = append(responses, toRouteResponse(route))
	}
	return responses
}
