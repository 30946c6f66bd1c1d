package models

import (
	"time"

	"github.com/google/uuid"
)

// Lead statuses form the columns of the console's pipeline board.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

// Lead represents one prospective or existing contact in the console.
type Lead struct {
	ID        string        `json:"id"`
	TenantID  string        `json:"tenant_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	Status    string        `json:"status"`
	Position  float64       `json:"position"`
	ExtraData LeadExtraData `json:"extra_data"`
	CreatedAt int64         `json:"created_at"`
	UpdatedAt int64         `json:"updated_at"`
}

// LeadExtraData is the metadata bag attached to a lead by the intake
// integrations. The console only ever reads it; voice calls recorded by the
// phone integration land here rather than in their own table.
type LeadExtraData struct {
	Source     string      `json:"source,omitempty"`
	VoiceCalls []VoiceCall `json:"voice_calls,omitempty"`
}

// VoiceCall is one historical phone interaction as delivered by the phone
// integration. CallDate arrives in several textual formats; the timeline
// package normalizes it. A call without a date is unusable and excluded.
type VoiceCall struct {
	CallID       string `json:"call_id,omitempty"`
	CallDate     string `json:"call_date,omitempty"`
	CallerName   string `json:"caller_name,omitempty"`
	CallerEmail  string `json:"caller_email,omitempty"`
	CallerIntent string `json:"caller_intent,omitempty"`
	Summary      string `json:"summary,omitempty"`
	Transcript   string `json:"transcript,omitempty"`
}

// HasStableID reports whether the call carries an identifier suitable for
// deduplication. Calls without one are never deduplicated against each other:
// two genuinely distinct short calls can have identical metadata.
func (c VoiceCall) HasStableID() bool {
	return c.CallID != ""
}

// CreateLeadRequest represents the request body for creating a new lead
type CreateLeadRequest struct {
	Name      string        `json:"name" binding:"required"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Notes     string        `json:"notes,omitempty"`
	ExtraData LeadExtraData `json:"extra_data,omitempty"`
}

// UpdateLeadRequest represents the request body for updating an existing lead
type UpdateLeadRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Notes *string `json:"notes,omitempty"`
}

// MoveLeadRequest represents the request body for the board drag-and-drop
// endpoint. Moving a card mutates only the status column and sort position.
type MoveLeadRequest struct {
	Status   string  `json:"status" binding:"required"`
	Position float64 `json:"position"`
}

// NewLead creates a new Lead with generated UUID and timestamps
func NewLead(tenantID string, req *CreateLeadRequest) *Lead {
	now := time.Now().Unix()
	return &Lead{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		Status:    LeadStatusNew,
		ExtraData: req.ExtraData,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidLeadStatus reports whether s is one of the pipeline board columns.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}
