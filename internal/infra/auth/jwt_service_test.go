package auth

import (
	"testing"
	"time"

	"quill/config"
	domainerrors "quill/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{Secret: secret, TokenTTL: ttl}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(42, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testAuthConfig("secret_one_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(testAuthConfig("secret_two_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(1, "a@x.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testAuthConfig("test_secret_key_very_long_for_testing", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(1, "a@x.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
