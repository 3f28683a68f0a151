package postgres_test

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"
	"quill/internal/infra/persistence/postgres"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated. A
// single pooled connection keeps the in-memory database shared and makes the
// foreign key pragma stick.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.PostModel{},
		&model.CommentModel{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "hash", Name: "Alice"}
	require.NoError(t, postgres.NewUserRepository(db).Create(context.Background(), user))

	return user
}

func createTestPost(t *testing.T, db *gorm.DB, authorID int64, title string, published bool, createdAt time.Time) *entity.Post {
	t.Helper()

	post := &entity.Post{
		Title:     title,
		Content:   "content",
		Published: published,
		AuthorID:  authorID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, postgres.NewPostRepository(db).Create(context.Background(), post))

	return post
}

func createTestComment(t *testing.T, db *gorm.DB, postID, authorID int64, text string) *entity.Comment {
	t.Helper()

	comment := &entity.Comment{Text: text, PostID: postID, AuthorID: authorID}
	require.NoError(t, postgres.NewCommentRepository(db).Create(context.Background(), comment))

	return comment
}

func TestCommentRepository_FindByID_IncludesAuthorAndPost(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	post := createTestPost(t, db, user.ID, "First", true, time.Now())
	created := createTestComment(t, db, post.ID, user.ID, "Nice post")

	got, err := postgres.NewCommentRepository(db).FindByID(context.Background(), created.ID)

	require.NoError(t, err)
	require.NotNil(t, got.Author)
	assert.Equal(t, user.ID, got.Author.ID)
	require.NotNil(t, got.Post)
	assert.Equal(t, post.ID, got.Post.ID)
	assert.Equal(t, "First", got.Post.Title)
}

func TestPostRepository_Delete_CascadesComments(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")
	post := createTestPost(t, db, user.ID, "Doomed", true, time.Now())
	first := createTestComment(t, db, post.ID, user.ID, "one")
	createTestComment(t, db, post.ID, user.ID, "two")

	postRepo := postgres.NewPostRepository(db)
	commentRepo := postgres.NewCommentRepository(db)

	require.NoError(t, postRepo.Delete(context.Background(), post.ID))

	_, err := postRepo.FindByID(context.Background(), post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	_, err = commentRepo.FindByID(context.Background(), first.ID)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)

	comments, err := commentRepo.ListByPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestPostRepository_ListPublished_FiltersDraftsAndOrders(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice@example.com")

	base := time.Now().Add(-time.Hour)
	older := createTestPost(t, db, user.ID, "Older", true, base)
	createTestPost(t, db, user.ID, "Draft", false, base.Add(time.Minute))
	newer := createTestPost(t, db, user.ID, "Newer", true, base.Add(2*time.Minute))
	createTestComment(t, db, older.ID, user.ID, "hi")

	posts, err := postgres.NewPostRepository(db).ListPublished(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)
	for _, p := range posts {
		assert.True(t, p.Published)
		require.NotNil(t, p.Author)
	}
	require.NotNil(t, posts[1].CommentCount)
	assert.Equal(t, int64(1), *posts[1].CommentCount)
	require.NotNil(t, posts[0].CommentCount)
	assert.Equal(t, int64(0), *posts[0].CommentCount)
}
