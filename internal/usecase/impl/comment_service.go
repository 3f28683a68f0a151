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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create attaches a new comment to an existing post.
func (srv *commentService) Create(ctx context.Context, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	if _, err := srv.postRepo.FindByID(ctx, input.PostID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to load post for comment")
	}

	comment := &entity.Comment{
		Text:     input.Text,
		PostID:   input.PostID,
		AuthorID: input.AuthorID,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		// The post can disappear between the check above and the insert; the
		// foreign key turns that race into a not-found.
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		srv.log(ctx).Error("Failed to create comment", slog.Int64("postID", input.PostID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create comment")
	}

	created, err := srv.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created comment")
	}

	srv.log(ctx).Debug("Comment created",
		slog.Int64("commentID", created.ID),
		slog.Int64("postID", input.PostID))

	return created, nil
}

// ListByPost returns all comments on a post, newest first. A post with no
// comments and a missing post both yield an empty list.
func (srv *commentService) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments", slog.Int64("postID", postID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Update replaces a comment's text. Existence is checked before ownership so a
// missing comment reports not-found rather than forbidden.
func (srv *commentService) Update(ctx context.Context, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	existing, err := srv.commentRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to load comment for update")
	}

	if err := policy.AuthorizeOwner(existing.AuthorID, input.RequesterID); err != nil {
		srv.log(ctx).Warn("Comment update denied",
			slog.Int64("commentID", input.ID),
			slog.Int64("requesterID", input.RequesterID))

		return nil, domainerrors.ErrForbidden.WithMessage("You can only update your own comments")
	}

	existing.Text = input.Text
	if err := srv.commentRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrCommentNotFound
		}

		srv.log(ctx).Error("Failed to update comment", slog.Int64("commentID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update comment")
	}

	updated, err := srv.commentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load updated comment")
	}

	srv.log(ctx).Debug("Comment updated", slog.Int64("commentID", input.ID))

	return updated, nil
}

// Delete removes a comment.
func (srv *commentService) Delete(ctx context.Context, input *usecase.DeleteCommentInput) error {
	existing, err := srv.commentRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		return errors.Wrap(err, "failed to load comment for delete")
	}

	if err := policy.AuthorizeOwner(existing.AuthorID, input.RequesterID); err != nil {
		srv.log(ctx).Warn("Comment delete denied",
			slog.Int64("commentID", input.ID),
			slog.Int64("requesterID", input.RequesterID))

		return domainerrors.ErrForbidden.WithMessage("You can only delete your own comments")
	}

	if err := srv.commentRepo.Delete(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrCommentNotFound
		}

		srv.log(ctx).Error("Failed to delete comment", slog.Int64("commentID", input.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Debug("Comment deleted", slog.Int64("commentID", input.ID))

	return nil
}
