package middleware

import (
	"strings"

	deliverycontext "quill/internal/delivery/context"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the verified identity in
// the context. Errors here flow to the central error handler, so every
// rejection carries the uniform single-field error body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithMessage("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// Verify returns the token error kinds; expired and malformed
			// tokens surface their own messages.
			return err
		}

		identity := &deliverycontext.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
		}

		// Set the identity on both contexts: handlers read echo.Context,
		// services read context.Context.
		deliverycontext.SetIdentity(c, identity)
		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
