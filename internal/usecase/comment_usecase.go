package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// CreateCommentInput defines the data required to comment on a post.
type CreateCommentInput struct {
	Text     string `json:"text" validate:"required"`
	PostID   int64  `json:"postId" validate:"required"`
	AuthorID int64  `json:"-"`
}

// UpdateCommentInput replaces a comment's text.
type UpdateCommentInput struct {
	ID          int64  `json:"-"`
	RequesterID int64  `json:"-"`
	Text        string `json:"text" validate:"required"`
}

// DeleteCommentInput identifies the comment to delete and who is asking.
type DeleteCommentInput struct {
	ID          int64
	RequesterID int64
}

// CommentUsecase defines the interface for comment business operations.
type CommentUsecase interface {
	// Create attaches a new comment to an existing post.
	Create(ctx context.Context, input *CreateCommentInput) (*entity.Comment, error)

	// ListByPost returns all comments on a post, newest first.
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)

	// Update replaces a comment's text after existence and ownership checks.
	Update(ctx context.Context, input *UpdateCommentInput) (*entity.Comment, error)

	// Delete removes a comment after existence and ownership checks.
	Delete(ctx context.Context, input *DeleteCommentInput) error
}
