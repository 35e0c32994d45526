package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/route-service/internal/domain"
	"github.com/spec-kit/route-service/internal/repository"
)

// AddRoutePointParams carries the fields of a waypoint creation request.
type AddRoutePointParams struct {
	RouteID     string
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
}

// RoutePointService coordinates waypoints added outside route creation.
type RoutePointService struct {
	points repository.RoutePointRepository
}

// NewRoutePointService builds the service.
func NewRoutePointService(points repository.RoutePointRepository) *RoutePointService {
	return &RoutePointService{points: points}
}

// ListByRoute returns the waypoints of a route.
func (s *RoutePointService) ListByRoute(ctx context.Context, routeID string) ([]domain.RoutePoint, error) {
	return s.points.ListByRoute(ctx, routeID)
}

// Add stores a new waypoint on an existing route.
func (s *RoutePointService) Add(ctx context.Context, params AddRoutePointParams) error {
	return s.points.Create(ctx, &domain.RoutePoint{
		ID:          uuid.NewString(),
		RouteID:     params.RouteID,
		Name:        params.Name,
		Description: params.Description,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		CreatedAt:   time.Now(),
	})
}
