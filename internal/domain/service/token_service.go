package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the identity claim carried by a bearer token.
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// Tokens are stateless: the claim lives in the token itself and is verified
// fresh on every request.
type TokenService interface {
	// Issue creates a signed token bound to the given identity.
	Issue(userID int64, email string) (string, error)

	// Verify checks a token's signature and shape and returns its claims.
	// Failures are domain AppErrors: ErrTokenExpired for an expired token,
	// ErrTokenInvalid for everything else.
	Verify(tokenString string) (*Claims, error)
}
