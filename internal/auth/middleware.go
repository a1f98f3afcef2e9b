package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// TokenQueryParam is the query parameter carrying the session token.
const TokenQueryParam = "token"

// AccessGate rejects requests lacking a valid session token before any handler runs.
type AccessGate struct {
	tokens *TokenManager
}

// NewAccessGate constructs the gate.
func NewAccessGate(tokens *TokenManager) *AccessGate {
	return &AccessGate{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (g *AccessGate) Handle(c *fiber.Ctx) error {
	token := c.Query(TokenQueryParam)
	if token == "" {
		return apperrors.NewTokenMissing()
	}

	if _, err := g.tokens.Decode(token); err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewTokenExpired()
		}
		return apperrors.NewTokenInvalid()
	}
	return c.Next()
}
