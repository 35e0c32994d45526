package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/route-service/internal/domain"
	"github.com/spec-kit/route-service/internal/events"
	"github.com/spec-kit/route-service/internal/repository"
)

const commentPreviewLen = 80

// CreateCommentParams carries the fields of a comment creation request.
type CreateCommentParams struct {
	RouteID   string
	UserID    string
	Comment   string
	CreatedAt *time.Time
}

// CommentService coordinates route comments.
type CommentService struct {
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
}

// NewCommentService builds the service.
func NewCommentService(comments repository.CommentRepository, dispatcher events.Dispatcher) *CommentService {
	return &CommentService{comments: comments, dispatcher: dispatcher}
}

// ListByRoute returns the comments attached to a route.
func (s *CommentService) ListByRoute(ctx context.Context, routeID string) ([]domain.Comment, error) {
	return s.comments.ListByRoute(ctx, routeID)
}

// Create stores a new comment, defaulting the timestamp when absent.
func (s *CommentService) Create(ctx context.Context, params CreateCommentParams) error {
	createdAt := time.Now()
	if params.CreatedAt != nil {
		createdAt = *params.CreatedAt
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		RouteID:   params.RouteID,
		UserID:    params.UserID,
		Comment:   params.Comment,
		CreatedAt: createdAt,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return err
	}

	preview := comment.Comment
	if len(preview) > commentPreviewLen {
		preview = preview[:commentPreviewLen]
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCommentAdded,
		RouteID:   comment.RouteID,
		UserID:    comment.UserID,
		Timestamp: time.Now(),
		Payload: events.CommentAddedPayload{
			CommentID: comment.ID,
			Preview:   preview,
		},
	})
	return nil
}

// Delete removes a comment by id.
func (s *CommentService) Delete(ctx context.Context, id string) error {
	return s.comments.DeleteByID(ctx, id)
}
