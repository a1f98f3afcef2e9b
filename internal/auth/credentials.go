package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/spec-kit/maid-cafe-service/internal/config"
)

// Credential failures.
var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrBadCredentials     = errors.New("invalid username or password")
)

// CredentialValidator checks a username/password pair against the one configured principal.
type CredentialValidator struct {
	username     string
	passwordHash string
	tokens       *TokenManager
}

// NewCredentialValidator hashes the configured password unless a hash was supplied.
func NewCredentialValidator(cfg config.AuthConfig, tokens *TokenManager) (*CredentialValidator, error) {
	hash := cfg.PasswordHash
	if hash == "" {
		var err error
		hash, err = HashPassword(cfg.Password, cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash configured password: %w", err)
		}
	}
	return &CredentialValidator{username: cfg.Username, passwordHash: hash, tokens: tokens}, nil
}

// Login validates the pair and mints a session token with subject = username.
func (v *CredentialValidator) Login(username, password string) (string, time.Time, error) {
	if username == "" || password == "" {
		return "", time.Time{}, ErrMissingCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passErr := ComparePassword(v.passwordHash, password)
	if !userOK || passErr != nil {
		return "", time.Time{}, ErrBadCredentials
	}

	return v.tokens.Issue(username)
}
