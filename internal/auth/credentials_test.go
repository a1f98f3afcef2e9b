package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/maid-cafe-service/internal/config"
)

func newValidator(t *testing.T) (*CredentialValidator, *TokenManager) {
	t.Helper()
	tm := NewTokenManager("secret", time.Hour)
	v, err := NewCredentialValidator(config.AuthConfig{
		Username:   "admin",
		Password:   "password",
		BcryptCost: bcrypt.MinCost,
	}, tm)
	require.NoError(t, err)
	return v, tm
}

func TestLoginSuccessIssuesAcceptedToken(t *testing.T) {
	v, tm := newValidator(t)

	token, expiresAt, err := v.Login("admin", "password")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	session, err := tm.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Subject)
}

func TestLoginFailures(t *testing.T) {
	v, _ := newValidator(t)

	_, _, err := v.Login("", "password")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, _, err = v.Login("admin", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, _, err = v.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)
	_, _, err = v.Login("root", "password")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestLoginWithPreHashedPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	v, err := NewCredentialValidator(config.AuthConfig{
		Username:     "owner",
		Password:     "ignored",
		PasswordHash: hash,
	}, NewTokenManager("secret", time.Hour))
	require.NoError(t, err)

	_, _, err = v.Login("owner", "s3cret")
	assert.NoError(t, err)
	_, _, err = v.Login("owner", "ignored")
	assert.ErrorIs(t, err, ErrBadCredentials)
}
