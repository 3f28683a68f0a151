package policy

import (
	"net/http"
	"testing"

	domainerrors "quill/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeOwner_SameUser(t *testing.T) {
	assert.NoError(t, AuthorizeOwner(42, 42))
}

func TestAuthorizeOwner_DifferentUser(t *testing.T) {
	err := AuthorizeOwner(42, 7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestAuthorizeOwner_NeverNotFound(t *testing.T) {
	// A denial must stay a Forbidden kind, distinct from NotFound.
	err := AuthorizeOwner(1, 2)
	assert.False(t, errors.Is(err, domainerrors.ErrPostNotFound))
	assert.False(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}
