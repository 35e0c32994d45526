package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/route-service/internal/api/dto"
	"github.com/spec-kit/route-service/internal/service"
)

// CommentsHandler exposes comment endpoints.
type CommentsHandler struct {
	comments *service.CommentService
	logger   *zap.Logger
}

// NewCommentsHandler constructs handler.
func NewCommentsHandler(commentService *service.CommentService, logger *zap.Logger) *CommentsHandler {
	return &CommentsHandler{comments: commentService, logger: logger}
}

// ByRoute handles GET /api/get-comment/:routeId.
func (h *CommentsHandler) ByRoute(c *fiber.Ctx) error {
	routeID := c.Params("routeId")
	if _, err := uuid.Parse(routeID); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid route id")
	}

	comments, err := h.comments.ListByRoute(c.Context(), routeID)
	if err != nil {
		return err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.CommentResponse{
			ID:        comment.ID,
			UserID:    comment.UserID,
			Comment:   comment.Comment,
			CreatedAt: comment.CreatedAt,
		})
	}
	return c.JSON(responses)
}

// Create handles POST /api/create-comment.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusInternalServerError).SendString("Comment was not saved")
	}

	err := h.comments.Create(c.Context(), service.CreateCommentParams{
		RouteID:   req.RouteID,
		UserID:    req.UserID,
		Comment:   req.Comment,
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		h.logger.Error("comment save failed", zap.String("route_id", req.RouteID), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString("Comment was not saved")
	}
	return c.Status(http.StatusCreated).SendString("Comment was saved")
}

// Delete handles DELETE /api/del/:idComment.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("idComment")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid comment id")
	}

	if err := h.comments.Delete(c.Context(), id); err != nil {
		h.logger.Error("comment delete failed", zap.String("comment_id", id), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString("Comment was not deleted")
	}
	return c.Status(http.StatusCreated).SendString("Comment was deleted")
}
