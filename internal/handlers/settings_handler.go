package handlers

import (
	"errors"
	"net/http"

	"github.com/DustinYates/cheatah-sub002/internal/models"
	"github.com/DustinYates/cheatah-sub002/internal/services"
	"github.com/DustinYates/cheatah-sub002/pkg/logger"
	"github.com/DustinYates/cheatah-sub002/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler handles chatbot prompt configuration requests
type SettingsHandler struct {
	settingsService SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetPromptSettings handles GET /api/settings/prompt
// Returns tenant defaults when nothing has been saved yet
func (h *SettingsHandler) GetPromptSettings(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	if tenantID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	settings, err := h.settingsService.GetSettings(tenantID)
	if err != nil {
		logger.Error("Failed to get prompt settings",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdatePromptSettings handles PUT /api/settings/prompt
func (h *SettingsHandler) UpdatePromptSettings(c *gin.Context) {
	logger.Info("Update prompt settings endpoint called")

	tenantID := middleware.TenantFromContext(c)
	if tenantID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UpdatePromptSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid settings request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	settings, err := h.settingsService.UpdateSettings(tenantID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTemperature),
			errors.Is(err, services.ErrPromptTooLong),
			errors.Is(err, services.ErrGreetingTooLong):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update prompt settings",
				zap.String("tenant_id", tenantID),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		}
		return
	}

	logger.Info("Prompt settings updated", zap.String("tenant_id", tenantID))

	c.JSON(http.StatusOK, settings)
}
