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

// postRepository implements the domain PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post with its author.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		First(&postM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByIDWithComments retrieves a post with its author and all comments,
// newest first, each comment carrying its own author.
func (repo *postRepository) FindByIDWithComments(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		First(&postM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post with comments")
	}

	return toPostDomain(&postM), nil
}

// ListPublished retrieves all published posts, newest first, with authors and
// per-post comment counts.
func (repo *postRepository) ListPublished(ctx context.Context) ([]*entity.Post, error) {
	var postMs []model.PostModel
	if err := repo.db.WithContext(ctx).
		Select("posts.*, (SELECT count(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count").
		Where("published = ?", true).
		Preload("Author").
		Order("created_at DESC").
		Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for i := range postMs {
		posts = append(posts, toPostDomain(&postMs[i]))
	}

	return posts, nil
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid author reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update modifies an existing post entity in the database.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	result := repo.db.WithContext(ctx).Model(&model.PostModel{}).
		Where("id = ?", postM.ID).
		Updates(map[string]any{
			"title":     postM.Title,
			"content":   postM.Content,
			"published": postM.Published,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post. The comments foreign key cascades, so attached
// comments disappear in the same statement.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}
