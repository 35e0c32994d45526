package dto

import "time"

// RouteResponse is the public view of a route. The image is served by its
// own endpoint, not inlined here.
type RouteResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	StartLat      float64    `json:"start_lat"`
	StartLng      float64    `json:"start_lng"`
	EndLat        float64    `json:"end_lat"`
	EndLng        float64    `json:"end_lng"`
	UserID        string     `json:"userId"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
	StartLocation string     `json:"startLocation"`
	EndLocation   string     `json:"endLocation"`
}

// RouteUpdateRequest payload for partial route updates. Absent fields stay
// untouched.
type RouteUpdateRequest struct {
	Description   *string `json:"description"`
	StartLocation *string `json:"startLocation"`
	EndLocation   *string `json:"endLocation"`
}
