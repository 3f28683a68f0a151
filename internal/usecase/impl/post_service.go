package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/policy"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new post owned by the authenticated author.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:     input.Title,
		Content:   input.Content,
		Published: input.Published,
		AuthorID:  input.AuthorID,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	// Re-fetch so the response carries the author relation.
	created, err := srv.postRepo.FindByID(ctx, post.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created post")
	}

	srv.log(ctx).Debug("Post created", slog.Int64("postID", created.ID), slog.Int64("authorID", input.AuthorID))

	return created, nil
}

// ListPublished returns all published posts, newest first.
func (srv *postService) ListPublished(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.ListPublished(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list published posts")
	}

	return posts, nil
}

// GetByID returns one post with its comments. Unpublished posts are readable
// by anyone holding their ID.
func (srv *postService) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := srv.postRepo.FindByIDWithComments(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		srv.log(ctx).Error("Failed to load post", slog.Int64("postID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load post")
	}

	return post, nil
}

// Update applies a partial update. Existence is checked before ownership so a
// missing post reports not-found rather than forbidden.
func (srv *postService) Update(ctx context.Context, input *usecase.UpdatePostInput) (*entity.Post, error) {
	existing, err := srv.postRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post for update")
	}

	if err := policy.AuthorizeOwner(existing.AuthorID, input.RequesterID); err != nil {
		srv.log(ctx).Warn("Post update denied",
			slog.Int64("postID", input.ID),
			slog.Int64("requesterID", input.RequesterID))

		return nil, domainerrors.ErrForbidden.WithMessage("You can only update your own posts")
	}

	// Merge the provided fields onto the current state; nil means unchanged.
	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Content != nil {
		existing.Content = *input.Content
	}
	if input.Published != nil {
		existing.Published = *input.Published
	}

	if err := srv.postRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		srv.log(ctx).Error("Failed to update post", slog.Int64("postID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update post")
	}

	// Re-fetch for fresh timestamps and relations.
	updated, err := srv.postRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load updated post")
	}

	srv.log(ctx).Debug("Post updated", slog.Int64("postID", input.ID))

	return updated, nil
}

// Delete removes a post and, through the schema, its comments.
func (srv *postService) Delete(ctx context.Context, input *usecase.DeletePostInput) error {
	existing, err := srv.postRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to load post for delete")
	}

	if err := policy.AuthorizeOwner(existing.AuthorID, input.RequesterID); err != nil {
		srv.log(ctx).Warn("Post delete denied",
			slog.Int64("postID", input.ID),
			slog.Int64("requesterID", input.RequesterID))

		return domainerrors.ErrForbidden.WithMessage("You can only delete your own posts")
	}

	if err := srv.postRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		srv.log(ctx).Error("Failed to delete post", slog.Int64("postID", input.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Debug("Post deleted", slog.Int64("postID", input.ID))

	return nil
}
