package handlers

import (
	"errors"
	"net/http"

	"github.com/DustinYates/cheatah-sub002/internal/services"
	"github.com/DustinYates/cheatah-sub002/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimelineHandler serves the unified interaction timeline for a lead
type TimelineHandler struct {
	timelineService TimelineServiceInterface
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(timelineService TimelineServiceInterface) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
	}
}

// GetTimeline handles GET /api/leads/:id/timeline
// Returns the lead's merged voice call and conversation history, newest
// first, along with the set of channels present
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	leadID := c.Param("id")
	if leadID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lead ID is required"})
		return
	}

	entries, channels, err := h.timelineService.GetTimeline(leadID)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		logger.Error("Failed to build timeline",
			zap.String("lead_id", leadID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build timeline"})
		return
	}

	logger.Info("Timeline assembled",
		zap.String("lead_id", leadID),
		zap.Int("entry_count", len(entries)),
	)

	c.JSON(http.StatusOK, gin.H{
		"timeline": entries,
		"channels": channels,
	})
}
