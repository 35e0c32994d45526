package domain

import "time"

// Comment is user feedback attached to a route.
type Comment struct {
	ID        string
	RouteID   string
	UserID    string
	Comment   string
	CreatedAt time.Time
}
