package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Identity is the verified subject of a request, extracted from a bearer
// token by the auth middleware. Handlers never read token claims directly.
type Identity struct {
	UserID int64
	Email  string
}

// SetIdentity stores the authenticated identity in echo.Context.
func SetIdentity(c echo.Context, identity *Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity extracts the authenticated identity from echo.Context.
// Returns nil when the request is anonymous.
func GetIdentity(c echo.Context) *Identity {
	if identity, ok := c.Get(string(KeyIdentity)).(*Identity); ok {
		return identity
	}

	return nil
}

// WithIdentity returns a new context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// GetIdentityFromContext extracts the identity from standard context.Context.
// Returns nil when the request is anonymous.
func GetIdentityFromContext(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(KeyIdentity).(*Identity); ok {
		return identity
	}

	return nil
}
