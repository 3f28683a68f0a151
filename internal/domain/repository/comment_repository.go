package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrCommentNotFound is a domain-specific error returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// FindByID retrieves a single comment with its author.
	FindByID(ctx context.Context, id int64) (*entity.Comment, error)

	// ListByPost retrieves all comments attached to a post, newest first,
	// with authors.
	ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error)

	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update modifies an existing comment entity in the storage.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment.
	Delete(ctx context.Context, id int64) error
}
