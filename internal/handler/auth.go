package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sumire/portfolio-cms/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Login verifies the admin credential and returns a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// Logout exists for client symmetry only. Tokens are not revocable; one
// stays valid until its expiry and the client alone discards it.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Logout successful",
	})
}

// Status reports whether the presented token is valid. It only runs behind
// JWTAuth, so reaching it means the caller is authenticated.
func (h *AuthHandler) Status(c echo.Context) error {
	username, _ := GetUsername(c)
	return c.JSON(http.StatusOK, map[string]any{
		"isAuthenticated": true,
		"user":            map[string]string{"username": username},
	})
}
