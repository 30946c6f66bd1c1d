package services

import (
	"fmt"

	"github.com/DustinYates/cheatah-sub002/internal/db"
	"github.com/DustinYates/cheatah-sub002/internal/timeline"
	"github.com/DustinYates/cheatah-sub002/pkg/logger"

	"go.uber.org/zap"
)

// TimelineService builds the unified interaction timeline for a lead. The two
// data sources behind it are independent: the lead record is mandatory, the
// conversation fetch is best-effort and its failure only shrinks the result.
type TimelineService struct {
	leads db.LeadRepository
	convs db.ConversationRepository
}

// NewTimelineService creates a new timeline service
func NewTimelineService(leads db.LeadRepository, convs db.ConversationRepository) *TimelineService {
	return &TimelineService{leads: leads, convs: convs}
}

// GetTimeline assembles the lead's timeline plus its channel presence flags.
// Absence of the lead itself is the only error that propagates; everything
// else degrades to a smaller but valid timeline.
func (s *TimelineService) GetTimeline(leadID string) ([]timeline.Entry, timeline.ChannelPresence, error) {
	if leadID == "" {
		return nil, timeline.ChannelPresence{}, fmt.Errorf("lead ID is required")
	}

	lead, err := s.leads.GetByID(leadID)
	if err != nil {
		return nil, timeline.ChannelPresence{}, fmt.Errorf("failed to load lead: %w", err)
	}
	if lead == nil {
		return nil, timeline.ChannelPresence{}, ErrLeadNotFound
	}

	conv, err := s.convs.FetchByLead(leadID)
	if err != nil {
		// Conversation data is best-effort: fall back to voice calls only
		logger.Warn("Conversation fetch failed, degrading timeline",
			zap.String("lead_id", leadID),
			zap.Error(err),
		)
		conv = nil
	}

	entries := timeline.Assemble(lead, conv)
	return entries, timeline.Presence(entries), nil
}
