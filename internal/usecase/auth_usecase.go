// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthOutput returns the authenticated user and their freshly issued token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new account, hashes the credential and issues a
	// token bound to the new identity. Duplicate emails are a conflict.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and wrong
	// password are deliberately indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// CurrentUser resolves the account behind an authenticated identity.
	CurrentUser(ctx context.Context, userID int64) (*entity.User, error)
}
