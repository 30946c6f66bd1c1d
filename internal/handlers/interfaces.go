package handlers

import (
	"github.com/DustinYates/cheatah-sub002/internal/models"
	"github.com/DustinYates/cheatah-sub002/internal/timeline"
)

// LeadServiceInterface defines the contract for lead service operations
// This interface is used for dependency injection and testing
type LeadServiceInterface interface {
	CreateLead(tenantID string, req *models.CreateLeadRequest) (*models.Lead, error)
	GetLead(id string) (*models.Lead, error)
	ListLeads(tenantID string, limit, offset int) ([]*models.Lead, error)
	UpdateLead(id string, req *models.UpdateLeadRequest) (*models.Lead, error)
	MoveLead(id string, req *models.MoveLeadRequest) error
	DeleteLead(id string) error
}

// TimelineServiceInterface defines the contract for timeline assembly
type TimelineServiceInterface interface {
	GetTimeline(leadID string) ([]timeline.Entry, timeline.ChannelPresence, error)
}

// UserServiceInterface defines the contract for user service operations
// This interface is used for dependency injection and testing
type UserServiceInterface interface {
	CreateUser(tenantID, username, email, password string) (*models.User, error)
	GetUser(id string) (*models.User, error)
	Authenticate(username, password, totpCode string) (*models.User, error)
	EnableTOTP(userID, issuer string) (string, error)
}

// SettingsServiceInterface defines the contract for prompt settings operations
type SettingsServiceInterface interface {
	GetSettings(tenantID string) (*models.PromptSettings, error)
	UpdateSettings(tenantID string, req *models.UpdatePromptSettingsRequest) (*models.PromptSettings, error)
}
