package handlers

import (
	"net/http"
	"strings"

	"budget-tracker/internal/dto"
	"budget-tracker/internal/errors"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles user registration
//
// Method: POST /api/signup
// Success Response: 201 Created with message, token, refresh_token and username
// Error Responses:
//   - 400: VALIDATION_001 invalid body or weak password
//   - 400: CONFLICT_001 / CONFLICT_002 username or email taken
//   - 500: SYSTEM_001
func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest

	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.Signup(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// Login handles user authentication
//
// Method: POST /api/login
// Success Response: 200 OK with token, refresh_token and username
// Error Responses:
//   - 400: VALIDATION_001 invalid body
//   - 400: AUTH_001 invalid credentials
//   - 500: SYSTEM_001
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new token pair
//
// Method: POST /api/token/refresh
// Error Responses:
//   - 400: VALIDATION_001 invalid body
//   - 401: AUTH_005 refresh token invalid, expired or revoked
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		return sendInvalidBody(c)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.RefreshTokens(c.Request().Context(), req.RefreshToken, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Logout revokes the caller's access token and refresh tokens
//
// Method: POST /api/logout
// Authentication: Required
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return SendError(c, errors.AuthMissingToken)
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return SendError(c, errors.AuthInvalidTokenFormat)
	}

	if err := h.authService.Logout(c.Request().Context(), tokenParts[1], getClientIP(c), c.Request().UserAgent()); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logout successful",
	})
}
