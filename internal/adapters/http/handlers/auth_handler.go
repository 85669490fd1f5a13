package handlers

import (
	"errors"
	"strings"

	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles admin login
// @Summary Login
// @Description Authenticate the admin account and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Invalid credentials")
	}

	input := &services.LoginInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	token, err := h.authService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same response for unknown username and wrong password
			return response.BadRequest(c, "Invalid credentials")
		}
		return response.InternalServerError(c, "Failed to login", err)
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
