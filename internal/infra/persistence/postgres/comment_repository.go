package postgres

import (
	"context"

	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// FindByID retrieves a single comment with its author and the post it
// belongs to. The post embed feeds the creation and update responses.
func (repo *commentRepository) FindByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var commentM model.CommentModel
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		First(&commentM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by id")
	}

	return toCommentDomain(&commentM), nil
}

// ListByPost retrieves all comments attached to a post, newest first, with authors.
func (repo *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*entity.Comment, error) {
	var commentMs []model.CommentModel
	if err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at DESC").
		Find(&commentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments by post")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for i := range commentMs {
		comments = append(comments, toCommentDomain(&commentMs[i]))
	}

	return comments, nil
}

// Create persists a new comment entity to the database.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			// The referenced post was deleted between the existence check
			// and the insert; report it the same way as the check would.
			return repository.ErrPostNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// Update modifies an existing comment's text.
func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	result := repo.db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("id = ?", comment.ID).
		Update("text", comment.Text)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment.
func (repo *commentRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CommentModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}
