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

// PostHandler holds dependencies for post handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles post creation. The author is always the authenticated
// identity, whatever the body claims.
func (h *PostHandler) Create(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	var input usecase.CreatePostInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.AuthorID = identity.UserID

	post, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.PostResponse{
		Message: "Post created successfully",
		Post:    post,
	})
}

// List returns all published posts, newest first.
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.uc.ListPublished(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.PostListResponse{
		Posts: posts,
		Count: len(posts),
	})
}

// Get returns one post with its comments.
func (h *PostHandler) Get(c echo.Context) error {
	postID, err := parsePostID(c.Param("id"))
	if err != nil {
		return err
	}

	post, err := h.uc.GetByID(c.Request().Context(), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.PostResponse{Post: post})
}

// Update handles a partial update of a post.
func (h *PostHandler) Update(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	postID, err := parsePostID(c.Param("id"))
	if err != nil {
		return err
	}

	// Binding into a value keeps an empty body valid: it becomes a no-op
	// update that still goes through existence and ownership checks.
	var input usecase.UpdatePostInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}
	input.ID = postID
	input.RequesterID = identity.UserID

	post, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.PostResponse{
		Message: "Post updated successfully",
		Post:    post,
	})
}

// Delete removes a post and its comments.
func (h *PostHandler) Delete(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	postID, err := parsePostID(c.Param("id"))
	if err != nil {
		return err
	}

	input := &usecase.DeletePostInput{
		ID:          postID,
		RequesterID: identity.UserID,
	}
	if err := h.uc.Delete(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Post deleted successfully")
}

// parsePostID converts a path parameter into a post ID. Anything that is not
// a positive integer is rejected before it reaches the database.
func parsePostID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidPostID
	}

	return id, nil
}
