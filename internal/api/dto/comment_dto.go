package dto

import "time"

// CommentRequest payload for creating a comment.
type CommentRequest struct {
	RouteID   string     `json:"routeId"`
	UserID    string     `json:"userId"`
	Comment   string     `json:"comment"`
	CreatedAt *time.Time `json:"createAt"`
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createAt"`
}
