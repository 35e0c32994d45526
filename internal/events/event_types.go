package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRouteCreated  EventType = "route_created"
	EventRouteDeleted  EventType = "route_deleted"
	EventCommentAdded  EventType = "comment_added"
	EventFavoriteAdded EventType = "favorite_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RouteID   string      `json:"route_id"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// RouteCreatedPayload payload.
type RouteCreatedPayload struct {
	Name          string `json:"name"`
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
	PointCount    int    `json:"point_count"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID string `json:"comment_id"`
	Preview   string `json:"preview"`
}

// FavoriteAddedPayload payload.
type FavoriteAddedPayload struct {
	FavoriteID string `json:"favorite_id"`
}
