package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router"
	"quill/internal/delivery/http/router/handler"
	"quill/internal/delivery/http/validator"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"
	mockSvc "quill/internal/mocks/service"
	mockUC "quill/internal/mocks/usecase"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo      *echo.Echo
	authUC    *mockUC.MockAuthUsecase
	postUC    *mockUC.MockPostUsecase
	commentUC *mockUC.MockCommentUsecase
	tokenSvc  *mockSvc.MockTokenService
}

func createTestServer(t *testing.T) serverFixtures {
	authUC := mockUC.NewMockAuthUsecase(t)
	postUC := mockUC.NewMockPostUsecase(t)
	commentUC := mockUC.NewMockCommentUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := router.NewRouter(router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, logger),
		PostHandler:    handler.NewPostHandler(postUC, logger),
		CommentHandler: handler.NewCommentHandler(commentUC, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
	})
	r.RegisterRoutes(e)

	return serverFixtures{
		echo:      e,
		authUC:    authUC,
		postUC:    postUC,
		commentUC: commentUC,
		tokenSvc:  tokenSvc,
	}
}

func doJSON(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHealthCheck(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.echo, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRegister_Success(t *testing.T) {
	fx := createTestServer(t)

	fx.authUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.AuthOutput{
			User:  &entity.User{ID: 1, Email: "alice@example.com", Name: "Alice"},
			Token: "signed.token",
		}, nil)

	rec := doJSON(fx.echo, http.MethodPost, "/api/auth/register", "",
		`{"email":"alice@example.com","password":"secret123","name":"Alice"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, "signed.token", body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotContains(t, user, "passwordHash")
	assert.NotContains(t, user, "password")
}

func TestRegister_MissingEmail(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.echo, http.MethodPost, "/api/auth/register", "",
		`{"password":"secret123"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Email is required", body["error"])
	assert.Len(t, body, 1)
}

func TestRegister_Conflict(t *testing.T) {
	fx := createTestServer(t)

	fx.authUC.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := doJSON(fx.echo, http.MethodPost, "/api/auth/register", "",
		`{"email":"taken@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User already exists", body["error"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	fx := createTestServer(t)

	fx.authUC.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doJSON(fx.echo, http.MethodPost, "/api/auth/login", "",
		`{"email":"alice@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid credentials", body["error"])
}

func TestMe_NoToken(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.echo, http.MethodGet, "/api/auth/me", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Authorization header is missing", body["error"])
}

func TestMe_ExpiredToken(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("stale.token").Return(nil, domainerrors.ErrTokenExpired)

	rec := doJSON(fx.echo, http.MethodGet, "/api/auth/me", "stale.token", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Token has expired", body["error"])
}

func TestMe_Success(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("good.token").Return(&service.Claims{UserID: 5, Email: "alice@example.com"}, nil)
	fx.authUC.EXPECT().
		CurrentUser(mock.Anything, int64(5)).
		Return(&entity.User{ID: 5, Email: "alice@example.com"}, nil)

	rec := doJSON(fx.echo, http.MethodGet, "/api/auth/me", "good.token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5), user["id"])
}

func TestListPosts_Empty(t *testing.T) {
	fx := createTestServer(t)

	fx.postUC.EXPECT().ListPublished(mock.Anything).Return([]*entity.Post{}, nil)

	rec := doJSON(fx.echo, http.MethodGet, "/api/posts", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["count"])

	posts, ok := body["posts"].([]any)
	require.True(t, ok)
	assert.Empty(t, posts)
}

func TestGetPost_InvalidID(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.echo, http.MethodGet, "/api/posts/abc", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid post ID", body["error"])
}

func TestGetPost_NotFound(t *testing.T) {
	fx := createTestServer(t)

	fx.postUC.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, domainerrors.ErrPostNotFound)

	rec := doJSON(fx.echo, http.MethodGet, "/api/posts/404", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Post not found", body["error"])
}

func TestCreatePost_NoToken(t *testing.T) {
	fx := createTestServer(t)

	rec := doJSON(fx.echo, http.MethodPost, "/api/posts", "",
		`{"title":"T","content":"C"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// The author comes from the token, never from the request body.
func TestCreatePost_AuthorFromToken(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("good.token").Return(&service.Claims{UserID: 5, Email: "alice@example.com"}, nil)
	fx.postUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreatePostInput")).
		Run(func(ctx context.Context, input *usecase.CreatePostInput) {
			assert.Equal(t, int64(5), input.AuthorID)
		}).
		Return(&entity.Post{ID: 10, Title: "T", Content: "C", AuthorID: 5}, nil)

	rec := doJSON(fx.echo, http.MethodPost, "/api/posts", "good.token",
		`{"title":"T","content":"C","authorId":999}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Post created successfully", body["message"])
}

func TestUpdatePost_Forbidden(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("good.token").Return(&service.Claims{UserID: 2, Email: "bob@example.com"}, nil)
	fx.postUC.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.UpdatePostInput")).
		Return(nil, domainerrors.ErrForbidden.WithMessage("You can only update your own posts"))

	rec := doJSON(fx.echo, http.MethodPatch, "/api/posts/10", "good.token",
		`{"title":"hijack"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "You can only update your own posts", body["error"])
}

func TestUpdatePost_EmptyBody(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("good.token").Return(&service.Claims{UserID: 1, Email: "alice@example.com"}, nil)
	fx.postUC.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.UpdatePostInput")).
		Run(func(ctx context.Context, input *usecase.UpdatePostInput) {
			assert.Equal(t, int64(10), input.ID)
			assert.Equal(t, int64(1), input.RequesterID)
			assert.Nil(t, input.Title)
			assert.Nil(t, input.Content)
			assert.Nil(t, input.Published)
		}).
		Return(&entity.Post{ID: 10, Title: "T", Content: "C", AuthorID: 1}, nil)

	// A PATCH that declares a JSON body but carries none must still reach
	// existence and ownership checks as a no-op update.
	req := httptest.NewRequest(http.MethodPatch, "/api/posts/10", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good.token")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Post updated successfully", body["message"])
}

func TestDeletePost_Success(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("good.token").Return(&service.Claims{UserID: 1, Email: "alice@example.com"}, nil)
	fx.postUC.EXPECT().
		Delete(mock.Anything, &usecase.DeletePostInput{ID: 10, RequesterID: 1}).
		Return(nil)

	rec := doJSON(fx.echo, http.MethodDelete, "/api/posts/10", "good.token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Post deleted successfully", body["message"])
}

func TestListComments_ByPost(t *testing.T) {
	fx := createTestServer(t)

	fx.commentUC.EXPECT().
		ListByPost(mock.Anything, int64(10)).
		Return([]*entity.Comment{
			{ID: 2, Text: "second", PostID: 10, AuthorID: 1},
			{ID: 1, Text: "first", PostID: 10, AuthorID: 2},
		}, nil)

	rec := doJSON(fx.echo, http.MethodGet, "/api/comments/post/10", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
}

func TestCreateComment_MissingPost(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("good.token").Return(&service.Claims{UserID: 2, Email: "bob@example.com"}, nil)
	fx.commentUC.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateCommentInput")).
		Return(nil, domainerrors.ErrPostNotFound)

	rec := doJSON(fx.echo, http.MethodPost, "/api/comments", "good.token",
		`{"text":"orphan","postId":404}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Post not found", body["error"])
}

func TestUpdateComment_MissingText(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("good.token").Return(&service.Claims{UserID: 2, Email: "bob@example.com"}, nil)

	rec := doJSON(fx.echo, http.MethodPatch, "/api/comments/100", "good.token", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Text is required", body["error"])
}

func TestDeleteComment_InvalidID(t *testing.T) {
	fx := createTestServer(t)

	fx.tokenSvc.EXPECT().Verify("good.token").Return(&service.Claims{UserID: 2, Email: "bob@example.com"}, nil)

	rec := doJSON(fx.echo, http.MethodDelete, "/api/comments/zero", "good.token", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid comment ID", body["error"])
}
