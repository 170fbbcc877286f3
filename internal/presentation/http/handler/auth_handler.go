package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/request"
	"github.com/mfarouk/marketpro-api/internal/presentation/http/dto/response"
	"github.com/mfarouk/marketpro-api/internal/store"
	"github.com/mfarouk/marketpro-api/pkg/apperror"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	store *store.Store
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(s *store.Store) *AuthHandler {
	return &AuthHandler{store: s}
}

// Login checks the credential list and records the session on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user := h.store.Authenticate(req.Username, req.Password)
	if user == nil {
		response.Error(c, apperror.ErrInvalidCredentials)
		return
	}

	h.store.SetSessionUser(*user)
	response.OK(c, "Login successful", user.Sanitized())
}

// Logout clears the recorded session
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.ClearSession()
	response.OK(c, "Logged out successfully", nil)
}

// Me returns the currently signed-in user
func (h *AuthHandler) Me(c *gin.Context) {
	user := GetSessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}
	response.OK(c, "User retrieved successfully", user.Sanitized())
}
