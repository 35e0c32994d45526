package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/route-service/internal/domain"
	"github.com/spec-kit/route-service/internal/events"
	"github.com/spec-kit/route-service/internal/repository"
)

// FavoriteService coordinates favorite-route marks.
type FavoriteService struct {
	favorites  repository.FavoriteRepository
	routes     repository.RouteRepository
	dispatcher events.Dispatcher
}

// NewFavoriteService builds the service.
func NewFavoriteService(favorites repository.FavoriteRepository, routes repository.RouteRepository, dispatcher events.Dispatcher) *FavoriteService {
	return &FavoriteService{favorites: favorites, routes: routes, dispatcher: dispatcher}
}

// Add marks the route favorite for the user.
func (s *FavoriteService) Add(ctx context.Context, routeID, userID string) error {
	favorite := &domain.FavoriteRoute{
		ID:      uuid.NewString(),
		RouteID: routeID,
		UserID:  userID,
		AddedAt: time.Now(),
	}
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventFavoriteAdded,
		RouteID:   routeID,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   events.FavoriteAddedPayload{FavoriteID: favorite.ID},
	})
	return nil
}

// Remove unmarks the route for the user.
func (s *FavoriteService) Remove(ctx context.Context, routeID, userID string) error {
	return s.favorites.Delete(ctx, routeID, userID)
}

// ListRouteIDs returns the ids of the user's favorite routes.
func (s *FavoriteService) ListRouteIDs(ctx context.Context, userID string) ([]string, error) {
	return s.favorites.ListRouteIDs(ctx, userID)
}

// RouteDetails returns the full routes for the given favorite route ids.
func (s *FavoriteService) RouteDetails(ctx context.Context, routeIDs []string) ([]domain.Route, error) {
	if len(routeIDs) == 0 {
		return []domain.Route{}, nil
	}
	return s.routes.GetByIDs(ctx, routeIDs)
}
