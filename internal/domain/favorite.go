package domain

import "time"

// FavoriteRoute marks a route as favorite for a user.
type FavoriteRoute struct {
	ID      string
	RouteID string
	UserID  string
	AddedAt time.Time
}
