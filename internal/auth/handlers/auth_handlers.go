package handlers

import (
	"net/http"

	"github.com/architect/city-events/internal/auth"
	"github.com/architect/city-events/internal/common/errors"
	"github.com/architect/city-events/internal/common/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves login and logout on top of the auth provider
type AuthHandler struct {
	provider auth.Provider
}

func NewAuthHandler(provider auth.Provider) *AuthHandler {
	return &AuthHandler{provider: provider}
}

// LoginRequest binds the login body
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=2,max=40"`
}

// LoginResponse carries the signed-in user and session token
type LoginResponse struct {
	User  *auth.User `json:"user"`
	Token string     `json:"token"`
}

// Login opens a session and sets the session cookie
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("username is required (2-40 characters)"))
		return
	}

	user, token, err := h.provider.Login(c.Request.Context(), req.Username)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.SetCookie("session_id", token, 0, "/", "", false, true)
	c.JSON(http.StatusOK, LoginResponse{User: user, Token: token})
}

// Logout closes the session and clears the cookie
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie("session_id")
	if token == "" {
		token = c.GetHeader("Authorization")
	}

	if err := h.provider.Logout(c.Request.Context(), token); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

// Me returns the user for the presented token, null when signed out
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	token, _ := c.Cookie("session_id")
	if token == "" {
		token = c.GetHeader("Authorization")
	}

	user, err := h.provider.UserForToken(c.Request.Context(), token)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
