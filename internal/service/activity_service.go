package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/route-service/internal/events"
	"github.com/spec-kit/route-service/internal/observability"
)

// ActivityService records domain events into the log and metrics so route,
// comment and favorite activity stays observable without a feed store.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewActivityService builds the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *ActivityService {
	return &ActivityService{dispatcher: dispatcher, logger: logger, metrics: metrics}
}

// RegisterHandlers subscribes to every activity event type.
func (s *ActivityService) RegisterHandlers() {
	for _, eventType := range []events.EventType{
		events.EventRouteCreated,
		events.EventRouteDeleted,
		events.EventCommentAdded,
		events.EventFavoriteAdded,
	} {
		s.dispatcher.Subscribe(eventType, s.record)
	}
}

func (s *ActivityService) record(_ context.Context, event events.Event) error {
	s.logger.Info("activity",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("route_id", event.RouteID),
		zap.String("user_id", event.UserID),
	)
	s.metrics.RecordRequest("event:"+string(event.Type), "EVENT", 0, 0)
	return nil
}
