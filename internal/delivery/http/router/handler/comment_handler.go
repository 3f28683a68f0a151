package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/delivery/http/response"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create attaches a comment to a post.
func (h *CommentHandler) Create(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.AuthorID = identity.UserID

	comment, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.CommentResponse{
		Message: "Comment created successfully",
		Comment: comment,
	})
}

// ListByPost returns all comments on a post, newest first.
func (h *CommentHandler) ListByPost(c echo.Context) error {
	postID, err := parsePostID(c.Param("postId"))
	if err != nil {
		return err
	}

	comments, err := h.uc.ListByPost(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.CommentListResponse{
		Comments: comments,
		Count:    len(comments),
	})
}

// Update replaces a comment's text.
func (h *CommentHandler) Update(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	commentID, err := parseCommentID(c.Param("id"))
	if err != nil {
		return err
	}

	var input usecase.UpdateCommentInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.ID = commentID
	input.RequesterID = identity.UserID

	comment, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.CommentResponse{
		Message: "Comment updated successfully",
		Comment: comment,
	})
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	commentID, err := parseCommentID(c.Param("id"))
	if err != nil {
		return err
	}

	input := &usecase.DeleteCommentInput{
		ID:          commentID,
		RequesterID: identity.UserID,
	}
	if err := h.uc.Delete(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Comment deleted successfully")
}

// parseCommentID converts a path parameter into a comment ID.
func parseCommentID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidCommentID
	}

	return id, nil
}
