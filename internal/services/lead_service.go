package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/DustinYates/cheatah-sub002/internal/db"
	"github.com/DustinYates/cheatah-sub002/internal/models"
)

var (
	// ErrLeadNotFound indicates the lead does not exist
	ErrLeadNotFound = errors.New("lead not found")

	// ErrInvalidLeadStatus indicates an unknown pipeline board column
	ErrInvalidLeadStatus = errors.New("invalid lead status")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// LeadService provides business logic for lead management
type LeadService struct {
	repo db.LeadRepository
}

// NewLeadService creates a new lead service
func NewLeadService(repo db.LeadRepository) *LeadService {
	return &LeadService{repo: repo}
}

// CreateLead validates and stores a new lead for a tenant
func (s *LeadService) CreateLead(tenantID string, req *models.CreateLeadRequest) (*models.Lead, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if req == nil || req.Name == "" {
		return nil, fmt.Errorf("lead name is required")
	}
	if req.Email != "" && !emailRegex.MatchString(req.Email) {
		return nil, fmt.Errorf("invalid email format")
	}

	lead := models.NewLead(tenantID, req)
	if err := s.repo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return lead, nil
}

// GetLead retrieves a single lead
func (s *LeadService) GetLead(id string) (*models.Lead, error) {
	if id == "" {
		return nil, fmt.Errorf("lead ID is required")
	}

	lead, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	return lead, nil
}

// ListLeads retrieves a tenant's leads with pagination
func (s *LeadService) ListLeads(tenantID string, limit, offset int) ([]*models.Lead, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if limit <= 0 {
		limit = 100 // default limit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.List(tenantID, limit, offset)
}

// UpdateLead applies the provided field changes to an existing lead
func (s *LeadService) UpdateLead(id string, req *models.UpdateLeadRequest) (*models.Lead, error) {
	if req == nil {
		return nil, fmt.Errorf("update request is required")
	}

	lead, err := s.GetLead(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("lead name cannot be empty")
		}
		lead.Name = *req.Name
	}
	if req.Email != nil {
		if *req.Email != "" && !emailRegex.MatchString(*req.Email) {
			return nil, fmt.Errorf("invalid email format")
		}
		lead.Email = *req.Email
	}
	if req.Phone != nil {
		lead.Phone = *req.Phone
	}
	if req.Notes != nil {
		lead.Notes = *req.Notes
	}

	if err := s.repo.Update(lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return lead, nil
}

// MoveLead moves a lead to another board column and position. This is the
// whole of the drag-and-drop operation: one status plus one sort position.
func (s *LeadService) MoveLead(id string, req *models.MoveLeadRequest) error {
	if id == "" {
		return fmt.Errorf("lead ID is required")
	}
	if req == nil {
		return fmt.Errorf("move request is required")
	}
	if !models.ValidLeadStatus(req.Status) {
		return ErrInvalidLeadStatus
	}

	if _, err := s.GetLead(id); err != nil {
		return err
	}

	if err := s.repo.Move(id, req.Status, req.Position); err != nil {
		return fmt.Errorf("failed to move lead: %w", err)
	}

	return nil
}

// DeleteLead removes a lead
func (s *LeadService) DeleteLead(id string) error {
	if id == "" {
		return fmt.Errorf("lead ID is required")
	}

	if _, err := s.GetLead(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil
}
