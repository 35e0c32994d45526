package domain

import "time"

// RoutePoint is a named waypoint belonging to a route.
type RoutePoint struct {
	ID          string
	RouteID     string
	Name        string
	Description string
	Latitude    float64
	Longitude   float64
	CreatedAt   time.Time
}
