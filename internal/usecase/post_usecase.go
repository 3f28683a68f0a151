package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// CreatePostInput defines the data required to create a post. AuthorID comes
// from the authenticated identity, never from the request body.
type CreatePostInput struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Published bool   `json:"published"`
	AuthorID  int64  `json:"-"`
}

// UpdatePostInput carries a partial update; nil fields are left unchanged.
type UpdatePostInput struct {
	ID          int64   `json:"-"`
	RequesterID int64   `json:"-"`
	Title       *string `json:"title"`
	Content     *string `json:"content"`
	Published   *bool   `json:"published"`
}

// DeletePostInput identifies the post to delete and who is asking.
type DeletePostInput struct {
	ID          int64
	RequesterID int64
}

// PostUsecase defines the interface for post business operations.
type PostUsecase interface {
	// Create persists a new post owned by the authenticated author.
	Create(ctx context.Context, input *CreatePostInput) (*entity.Post, error)

	// ListPublished returns all published posts, newest first.
	ListPublished(ctx context.Context) ([]*entity.Post, error)

	// GetByID returns one post with its comments, regardless of published state.
	GetByID(ctx context.Context, id int64) (*entity.Post, error)

	// Update applies a partial update after existence and ownership checks.
	Update(ctx context.Context, input *UpdatePostInput) (*entity.Post, error)

	// Delete removes a post (comments cascade) after existence and ownership checks.
	Delete(ctx context.Context, input *DeletePostInput) error
}
