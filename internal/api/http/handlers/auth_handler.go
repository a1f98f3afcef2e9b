package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maid-cafe-service/internal/api/dto"
	"github.com/spec-kit/maid-cafe-service/internal/api/render"
)

// AuthHandler serves token issuance and the token check endpoint.
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	result, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return err
	}
	return render.OK(c, dto.LoginResponse{
		Message: "login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// Check handles GET /auth-test. The access gate has already accepted the token.
func (h *AuthHandler) Check(c *fiber.Ctx) error {
	return render.OK(c, dto.MessageResponse{Message: "token is valid"})
}
