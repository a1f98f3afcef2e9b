package service

import (
	"errors"
	"time"

	"github.com/spec-kit/maid-cafe-service/internal/auth"
	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// AuthService exchanges credentials for session tokens.
type AuthService struct {
	validator *auth.CredentialValidator
}

// NewAuthService constructs the service.
func NewAuthService(validator *auth.CredentialValidator) *AuthService {
	return &AuthService{validator: validator}
}

// LoginResult is the outcome of a successful login.
type LoginResult struct {
	Token     string
	User      string
	ExpiresAt time.Time
}

// Login validates the credential pair and returns a session token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	token, expiresAt, err := s.validator.Login(username, password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return nil, apperrors.NewInvalidCredentials(err.Error())
	case errors.Is(err, auth.ErrBadCredentials):
		return nil, apperrors.NewAuthenticationFailed(err.Error())
	case err != nil:
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{Token: token, User: username, ExpiresAt: expiresAt}, nil
}
