package dto

import "time"

// RoutePointRequest payload for adding a waypoint to a route.
type RoutePointRequest struct {
	RouteID     string  `json:"route_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// RoutePointResponse is the public view of a waypoint.
type RoutePointResponse struct {
	ID          string    `json:"id"`
	RouteID     string    `json:"route_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}
