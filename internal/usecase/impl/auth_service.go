// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	passwordMinLength int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	passwordMinLength := 6
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PasswordMinLength > 0 {
		passwordMinLength = params.Config.Auth.PasswordMinLength
	}

	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		passwordMinLength: passwordMinLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if len(input.Password) < srv.passwordMinLength {
		return nil, domainerrors.ErrValidationFailed.
			WithMessage(fmt.Sprintf("Password must be at least %d characters", srv.passwordMinLength))
	}

	// Hash outside the transaction; bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
	}

	// The duplicate check and the insert share one transaction; the unique
	// index on email backs the same decision against concurrent registrations.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.Users()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing user")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(newUser.ID, newUser.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login orchestrates the user login process. Unknown email and wrong password
// both collapse into the same invalid-credentials error so callers cannot
// enumerate accounts.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// CurrentUser resolves the account behind an authenticated identity.
func (srv *authService) CurrentUser(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}
