package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DustinYates/cheatah-sub002/internal/models"
	"github.com/DustinYates/cheatah-sub002/internal/services"
	"github.com/DustinYates/cheatah-sub002/pkg/logger"
	"github.com/DustinYates/cheatah-sub002/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler handles lead management requests
type LeadHandler struct {
	leadService LeadServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// CreateLead handles lead creation (POST /api/leads)
func (h *LeadHandler) CreateLead(c *gin.Context) {
	logger.Info("Create lead endpoint called")

	tenantID := middleware.TenantFromContext(c)
	if tenantID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create lead request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lead, err := h.leadService.CreateLead(tenantID, &req)
	if err != nil {
		logger.Warn("Lead creation failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Lead created successfully",
		zap.String("lead_id", lead.ID),
		zap.String("tenant_id", tenantID),
	)

	c.JSON(http.StatusCreated, lead)
}

// GetLead handles retrieving a single lead (GET /api/leads/:id)
func (h *LeadHandler) GetLead(c *gin.Context) {
	leadID := c.Param("id")
	if leadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lead ID is required"})
		return
	}

	lead, err := h.leadService.GetLead(leadID)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		logger.Error("Failed to get lead",
			zap.String("lead_id", leadID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get lead"})
		return
	}

	if lead.TenantID != middleware.TenantFromContext(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// ListLeads handles listing leads for the authenticated tenant (GET /api/leads)
// Query params: limit (default 100), offset (default 0)
func (h *LeadHandler) ListLeads(c *gin.Context) {
	tenantID := middleware.TenantFromContext(c)
	if tenantID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := 0
	offset := 0

	if limitParam := c.Query("limit"); limitParam != "" {
		l, err := strconv.Atoi(limitParam)
		if err != nil || l < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = l
	}

	if offsetParam := c.Query("offset"); offsetParam != "" {
		o, err := strconv.Atoi(offsetParam)
		if err != nil || o < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset parameter"})
			return
		}
		offset = o
	}

	leads, err := h.leadService.ListLeads(tenantID, limit, offset)
	if err != nil {
		logger.Error("Failed to list leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leads": leads,
		"count": len(leads),
	})
}

// UpdateLead handles updating lead fields (PUT /api/leads/:id)
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	leadID := c.Param("id")
	if leadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lead ID is required"})
		return
	}

	var req models.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update lead request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lead, err := h.leadService.UpdateLead(leadID, &req)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		logger.Warn("Lead update failed",
			zap.String("lead_id", leadID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Lead updated successfully", zap.String("lead_id", leadID))

	c.JSON(http.StatusOK, lead)
}

// MoveLead handles moving a lead across pipeline columns (PATCH /api/leads/:id/move)
func (h *LeadHandler) MoveLead(c *gin.Context) {
	leadID := c.Param("id")
	if leadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lead ID is required"})
		return
	}

	var req models.MoveLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid move lead request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.leadService.MoveLead(leadID, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrLeadNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		case errors.Is(err, services.ErrInvalidLeadStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lead status"})
		default:
			logger.Error("Lead move failed",
				zap.String("lead_id", leadID),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move lead"})
		}
		return
	}

	logger.Info("Lead moved successfully",
		zap.String("lead_id", leadID),
		zap.String("status", req.Status),
	)

	c.JSON(http.StatusOK, gin.H{"message": "Lead moved successfully"})
}

// DeleteLead handles deleting a lead (DELETE /api/leads/:id)
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	leadID := c.Param("id")
	if leadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lead ID is required"})
		return
	}

	if err := h.leadService.DeleteLead(leadID); err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		logger.Error("Lead deletion failed",
			zap.String("lead_id", leadID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
		return
	}

	logger.Info("Lead deleted successfully", zap.String("lead_id", leadID))

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}
