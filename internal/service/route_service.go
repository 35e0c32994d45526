package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/route-service/internal/domain"
	"github.com/spec-kit/route-service/internal/events"
	"github.com/spec-kit/route-service/internal/persistence"
	"github.com/spec-kit/route-service/internal/repository"
)

// Image content types recognized from magic numbers.
const (
	ContentTypeJPEG  = "image/jpeg"
	ContentTypePNG   = "image/png"
	ContentTypeOctet = "application/octet-stream"
)

// CreateRouteParams carries the fields of a route creation request. Points
// arrive as the raw JSON array the client submits alongside the form.
type CreateRouteParams struct {
	Name          string
	Description   string
	StartLat      float64
	StartLng      float64
	EndLat        float64
	EndLng        float64
	UserID        string
	CreatedAt     *time.Time
	StartLocation string
	EndLocation   string
	FinishImage   []byte
	PointsJSON    string
}

// RoutePointParams is one waypoint within a creation request.
type RoutePointParams struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// RouteService coordinates route CRUD, waypoints and image serving.
type RouteService struct {
	routes     repository.RouteRepository
	points     repository.RoutePointRepository
	imageCache *persistence.ImageCache
	dispatcher events.Dispatcher
}

// NewRouteService builds the service.
func NewRouteService(routes repository.RouteRepository, points repository.RoutePointRepository, imageCache *persistence.ImageCache, dispatcher events.Dispatcher) *RouteService {
	return &RouteService{routes: routes, points: points, imageCache: imageCache, dispatcher: dispatcher}
}

// Create stores the route and its waypoints, all sharing the new route id.
func (s *RouteService) Create(ctx context.Context, params CreateRouteParams) (string, error) {
	var points []RoutePointParams
	if params.PointsJSON != "" {
		if err := json.Unmarshal([]byte(params.PointsJSON), &points); err != nil {
			return "", fmt.Errorf("parse points: %w", err)
		}
	}

	createdAt := time.Now()
	if params.CreatedAt != nil {
		createdAt = *params.CreatedAt
	}

	route := &domain.Route{
		ID:            uuid.NewString(),
		Name:          params.Name,
		Description:   params.Description,
		StartLat:      params.StartLat,
		StartLng:      params.StartLng,
		EndLat:        params.EndLat,
		EndLng:        params.EndLng,
		UserID:        params.UserID,
		CreatedAt:     createdAt,
		StartLocation: params.StartLocation,
		EndLocation:   params.EndLocation,
		FinishImage:   params.FinishImage,
	}
	if err := s.routes.Create(ctx, route); err != nil {
		return "", err
	}

	for _, point := range points {
		if err := s.points.Create(ctx, &domain.RoutePoint{
			ID:          uuid.NewString(),
			RouteID:     route.ID,
			Name:        point.Name,
			Description: point.Description,
			Latitude:    point.Latitude,
			Longitude:   point.Longitude,
			CreatedAt:   createdAt,
		}); err != nil {
			return "", err
		}
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventRouteCreated,
		RouteID:   route.ID,
		UserID:    route.UserID,
		Timestamp: time.Now(),
		Payload: events.RouteCreatedPayload{
			Name:          route.Name,
			StartLocation: route.StartLocation,
			EndLocation:   route.EndLocation,
			PointCount:    len(points),
		},
	})

	return route.ID, nil
}

// ListByUser returns the routes owned by the user.
func (s *RouteService) ListByUser(ctx context.Context, userID string) ([]domain.Route, error) {
	return s.routes.ListByUser(ctx, userID)
}

// Get returns a single route.
func (s *RouteService) Get(ctx context.Context, routeID string) (*domain.Route, error) {
	return s.routes.GetByID(ctx, routeID)
}

// ListAll returns every stored route.
func (s *RouteService) ListAll(ctx context.Context) ([]domain.Route, error) {
	return s.routes.ListAll(ctx)
}

// Search returns routes matching the exact start and end locations.
func (s *RouteService) Search(ctx context.Context, startLocation, endLocation string) ([]domain.Route, error) {
	return s.routes.SearchByLocations(ctx, startLocation, endLocation)
}

// Update applies a partial update and drops any cached image for the route.
func (s *RouteService) Update(ctx context.Context, routeID string, update repository.RouteUpdate) error {
	if err := s.routes.UpdateByID(ctx, routeID, update); err != nil {
		return err
	}
	s.imageCache.Invalidate(ctx, routeID)
	return nil
}

// Delete removes the route and everything attached to it.
func (s *RouteService) Delete(ctx context.Context, routeID string) (bool, error) {
	deleted, err := s.routes.DeleteByID(ctx, routeID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.imageCache.Invalidate(ctx, routeID)
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventRouteDeleted,
			RouteID:   routeID,
			Timestamp: time.Now(),
		})
	}
	return deleted, nil
}

// Image returns the route's finish image bytes and sniffed content type,
// consulting the cache before the database.
func (s *RouteService) Image(ctx context.Context, routeID string) ([]byte, string, error) {
	if data, ok := s.imageCache.Get(ctx, routeID); ok {
		return data, DetectImageContentType(data), nil
	}

	data, err := s.routes.GetImage(ctx, routeID)
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", pgx.ErrNoRows
	}

	s.imageCache.Set(ctx, routeID, data)
	return data, DetectImageContentType(data), nil
}

// RoutesByIDs returns the routes with the given ids.
func (s *RouteService) RoutesByIDs(ctx context.Context, ids []string) ([]domain.Route, error) {
	if len(ids) == 0 {
		return []domain.Route{}, nil
	}
	return s.routes.GetByIDs(ctx, ids)
}

// DetectImageContentType sniffs the content type from the leading magic
// bytes: FF D8 is JPEG, 89 50 is PNG, anything else is served opaque.
func DetectImageContentType(data []byte) string {
	if len(data) < 2 {
		return ContentTypeOctet
	}
	switch {
	case data[0] == 0xFF && data[1] == 0xD8:
		return ContentTypeJPEG
	case data[0] == 0x89 && data[1] == 0x50:
		return ContentTypePNG
	default:
		return ContentTypeOctet
	}
}
