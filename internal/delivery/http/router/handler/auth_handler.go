// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/delivery/http/response"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, response.AuthResponse{
		Message: "User registered successfully",
		User:    output.User,
		Token:   output.Token,
	})
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.AuthResponse{
		Message: "Login successful",
		User:    output.User,
		Token:   output.Token,
	})
}

// Me returns the account behind the bearer token on the request.
func (h *AuthHandler) Me(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, response.UserResponse{User: user})
}
