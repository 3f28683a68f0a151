package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
type PostRepository interface {
	// FindByID retrieves a single post with its author. Comments are not
	// loaded; existence and ownership checks only need the bare row.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// FindByIDWithComments retrieves a post with its author and all comments,
	// newest first, each comment carrying its own author.
	FindByIDWithComments(ctx context.Context, id int64) (*entity.Post, error)

	// ListPublished retrieves all published posts, newest first, with authors
	// and per-post comment counts.
	ListPublished(ctx context.Context) ([]*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post entity in the storage.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post. Attached comments go with it (database cascade).
	Delete(ctx context.Context, id int64) error
}
