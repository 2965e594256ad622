package handlers

import (
	"errors"
	"fmt"
	"strings"

	"loanguard/internal/core/domain"
	"loanguard/internal/core/services"
	"loanguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles sign-up and token endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUpRequest represents sign-up request body
type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenRequest represents the OAuth2 password form fields
type TokenRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// SignUp handles admin registration
// @Summary Register new admin
// @Description Register a new admin account; the username must be unique
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Admin credentials"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /sign-up/ [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	input := &services.SignUpInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	if err := h.authService.SignUp(c.Context(), input); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return response.BadRequest(c, fmt.Sprintf("Username %s already exist in database", input.Username))
		}
		return response.InternalServerError(c, "Failed to register user")
	}

	return response.Created(c, "User has been successfully registered", nil)
}

// Token handles admin login and mints a bearer token
// @Summary Login for access token
// @Description Authenticate an admin with form credentials and return a bearer token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} services.TokenResponse
// @Failure 401 {object} response.Response
// @Router /token/ [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Unauthorized(c, "Incorrect username or password")
	}

	token, err := h.authService.Login(c.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Incorrect username or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return c.JSON(token)
}
