package handlers

import (
	"errors"
	"net/http"

	"hostiva/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves back-office authentication endpoints.
type AdminHandler struct {
	Auth admin.AdminAuthService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(auth admin.AdminAuthService) *AdminHandler {
	return &AdminHandler{Auth: auth}
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginHandler authenticates an admin and returns a bearer token.
func (h *AdminHandler) AdminLoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid admin login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Auth.SignIn(req.Email, req.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		logger.Error("Admin sign-in failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AdminLogoutHandler revokes the calling admin's session.
func (h *AdminHandler) AdminLogoutHandler(c *gin.Context) {
	logger := getLogger(c)

	token, exists := c.Get("adminToken")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Auth.SignOut(token.(string)); err != nil {
		logger.Error("Failed to revoke admin session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
