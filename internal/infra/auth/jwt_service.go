// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"quill/config"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// the JWT standard with symmetric HS256 signing.
type jwtService struct {
	secret string        // Process-wide signing secret, read-only after start.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService. It refuses to start without
// a signing secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.Auth.Secret,
		ttl:    cfg.Auth.TokenTTL,
	}, nil
}

// Issue creates a signed token carrying the user's identity claim.
func (s *jwtService) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks the token's signature and claims. Expiry surfaces as its own
// error kind; every other failure collapses to the invalid-token kind.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token expired")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	if !token.Valid || claims.UserID == 0 || claims.Email == "" {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("required claim fields are absent")
	}

	return claims, nil
}
