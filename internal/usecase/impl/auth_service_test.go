package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"quill/config"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	mockSvc "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       &config.Config{Auth: &config.AuthConfig{PasswordMinLength: 6}},
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "secret123",
		Name:     "Alice",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().Users().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = 42
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().Issue(int64(42), input.Email).Return("signed.token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(42), output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, "signed.token", output.Token)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "secret123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().Users().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: 7, Email: input.Email}, nil)

			_ = fn(mockFactory)
		}).
		Return(domainerrors.ErrUserAlreadyExists)

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_PasswordTooShort(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "bob@example.com",
		Password: "short",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Password must be at least 6 characters", appErr.Message())
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.tokenService.EXPECT().Issue(int64(1), user.Email).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "signed.token", output.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_FailureMessagesMatch(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "alice@example.com", PasswordHash: "hashed"}

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
}

func TestAuthService_CurrentUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: 5, Email: "alice@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(5)).Return(user, nil)

	got, err := fx.service.CurrentUser(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.CurrentUser(ctx, 99)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
