package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomyStatuses(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewAuthenticationFailed("nope"), CodeAuthenticationFailed, http.StatusUnauthorized},
		{NewInvalidCredentials("missing"), CodeInvalidCredentials, http.StatusBadRequest},
		{NewTokenMissing(), CodeTokenMissing, http.StatusUnauthorized},
		{NewTokenExpired(), CodeTokenExpired, http.StatusUnauthorized},
		{NewTokenInvalid(), CodeTokenInvalid, http.StatusUnauthorized},
		{NewValidationError("bad"), CodeValidation, http.StatusBadRequest},
		{NewNotFound("customer"), CodeNotFound, http.StatusNotFound},
		{NewConflict("in use"), CodeConflict, http.StatusBadRequest},
		{NewStoreError(errors.New("boom")), CodeStoreError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		de := ToDomainError(tc.err)
		require.NotNil(t, de)
		assert.Equal(t, tc.code, de.Code)
		assert.Equal(t, tc.status, de.HTTPStatus)
	}
}

func TestToDomainErrorUnwrapsAndNormalizes(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFound("maid"))
	de := ToDomainError(wrapped)
	assert.Equal(t, "maid not found", de.Message)
	assert.True(t, HasCode(wrapped, CodeNotFound))

	raw := errors.New("connection reset")
	de = ToDomainError(raw)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "internal server error", de.Message)
	assert.ErrorIs(t, de, raw)

	assert.Nil(t, ToDomainError(nil))
}

func TestStoreErrorHidesCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	de := ToDomainError(NewStoreError(cause))
	assert.Equal(t, "database error", de.Message)
	assert.Contains(t, de.Error(), "duplicate key")
}
