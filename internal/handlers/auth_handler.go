package handlers

import (
	"errors"
	"net/http"

	"github.com/DustinYates/cheatah-sub002/internal/config"
	"github.com/DustinYates/cheatah-sub002/internal/models"
	"github.com/DustinYates/cheatah-sub002/internal/services"
	"github.com/DustinYates/cheatah-sub002/pkg/logger"
	"github.com/DustinYates/cheatah-sub002/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService UserServiceInterface
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService UserServiceInterface, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		config:      cfg,
	}
}

// Login handles user authentication and returns a JWT token
func (h *AuthHandler) Login(c *gin.Context) {
	logger.Info("Auth login endpoint called")

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to parse login request")
		if req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password, req.TOTPCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountLocked):
			logger.Warn("Login attempt on locked account", zap.String("username", req.Username))
			c.JSON(http.StatusLocked, gin.H{"error": "Account is temporarily locked"})
		case errors.Is(err, services.ErrInvalidTOTP):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid TOTP code"})
		default:
			logger.Warn("Invalid credentials", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		}
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.TenantID, h.config)
	if err != nil {
		logger.Error("Failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info("User logged in successfully",
		zap.String("user_id", user.ID),
		zap.String("tenant_id", user.TenantID),
	)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.ToResponse(),
	})
}
