package dto

// FavoriteRequest payload for marking a route favorite.
type FavoriteRequest struct {
	RouteID string `json:"routeId"`
	UserID  string `json:"userId"`
}
