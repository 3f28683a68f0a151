package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postServiceFixtures struct {
	service  usecase.PostUsecase
	postRepo *mockRepo.MockPostRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPostService(PostServiceParams{
		PostRepo: postRepo,
		Logger:   logger,
	})

	return postServiceFixtures{
		service:  service,
		postRepo: postRepo,
	}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestPostService_Create_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	input := &usecase.CreatePostInput{
		Title:    "First post",
		Content:  "Hello",
		AuthorID: 1,
	}

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			post.ID = 10
		}).
		Return(nil)

	created := &entity.Post{
		ID:       10,
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: 1,
		Author:   &entity.AuthorRef{ID: 1, Name: "Alice"},
	}
	fx.postRepo.EXPECT().FindByID(ctx, int64(10)).Return(created, nil)

	post, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, created, post)
}

func TestPostService_GetByID_NotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().
		FindByIDWithComments(ctx, int64(404)).
		Return(nil, repository.ErrPostNotFound)

	post, err := fx.service.GetByID(ctx, 404)

	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_Update_MergesOnlyProvidedFields(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	existing := &entity.Post{
		ID:        10,
		Title:     "Old title",
		Content:   "Old content",
		Published: false,
		AuthorID:  1,
	}

	fx.postRepo.EXPECT().FindByID(ctx, int64(10)).Return(existing, nil).Once()

	fx.postRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			assert.Equal(t, "New title", post.Title)
			assert.Equal(t, "Old content", post.Content)
			assert.True(t, post.Published)
		}).
		Return(nil)

	refreshed := &entity.Post{ID: 10, Title: "New title", Content: "Old content", Published: true, AuthorID: 1}
	fx.postRepo.EXPECT().FindByID(ctx, int64(10)).Return(refreshed, nil).Once()

	post, err := fx.service.Update(ctx, &usecase.UpdatePostInput{
		ID:          10,
		RequesterID: 1,
		Title:       strPtr("New title"),
		Published:   boolPtr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, refreshed, post)
}

func TestPostService_Update_NonOwnerForbidden(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Post{ID: 10, AuthorID: 1}, nil)

	post, err := fx.service.Update(ctx, &usecase.UpdatePostInput{
		ID:          10,
		RequesterID: 2,
		Title:       strPtr("Hijacked"),
	})

	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "You can only update your own posts", appErr.Message())
}

// A missing post must report not-found, never forbidden, even for a
// requester who owns nothing.
func TestPostService_Update_MissingPostNotFound(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().
		FindByID(ctx, int64(404)).
		Return(nil, repository.ErrPostNotFound)

	post, err := fx.service.Update(ctx, &usecase.UpdatePostInput{
		ID:          404,
		RequesterID: 2,
		Title:       strPtr("anything"),
	})

	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPostService_Delete_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Post{ID: 10, AuthorID: 1}, nil)
	fx.postRepo.EXPECT().Delete(ctx, int64(10)).Return(nil)

	err := fx.service.Delete(ctx, &usecase.DeletePostInput{ID: 10, RequesterID: 1})

	require.NoError(t, err)
}

func TestPostService_Delete_NonOwnerForbidden(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(&entity.Post{ID: 10, AuthorID: 1}, nil)

	err := fx.service.Delete(ctx, &usecase.DeletePostInput{ID: 10, RequesterID: 2})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "You can only delete your own posts", appErr.Message())
}

func TestPostService_ListPublished_Empty(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	fx.postRepo.EXPECT().ListPublished(ctx).Return([]*entity.Post{}, nil)

	posts, err := fx.service.ListPublished(ctx)

	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}
