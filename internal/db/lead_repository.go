package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DustinYates/cheatah-sub002/internal/models"

	"github.com/google/uuid"
)

// LeadRepository defines the interface for lead data access
type LeadRepository interface {
	Create(lead *models.Lead) error
	GetByID(id string) (*models.Lead, error)
	List(tenantID string, limit, offset int) ([]*models.Lead, error)
	Update(lead *models.Lead) error
	Move(id, status string, position float64) error
	Delete(id string) error
}

// leadRepository implements LeadRepository over SQLite
type leadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new LeadRepository
func NewLeadRepository(db *sql.DB) LeadRepository {
	return &leadRepository{db: db}
}

// Create inserts a new lead
func (r *leadRepository) Create(lead *models.Lead) error {
	if lead == nil {
		return fmt.Errorf("lead cannot be nil")
	}

	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}

	now := time.Now().Unix()
	if lead.CreatedAt == 0 {
		lead.CreatedAt = now
	}
	lead.UpdatedAt = now

	extra, err := json.Marshal(lead.ExtraData)
	if err != nil {
		return fmt.Errorf("failed to encode extra data: %w", err)
	}

	query := `
		INSERT INTO leads (id, tenant_id, name, email, phone, notes, status, position, extra_data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		lead.ID,
		lead.TenantID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Notes,
		lead.Status,
		lead.Position,
		string(extra),
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

// GetByID retrieves a lead by ID, returning nil when it does not exist
func (r *leadRepository) GetByID(id string) (*models.Lead, error) {
	if id == "" {
		return nil, fmt.Errorf("lead ID cannot be empty")
	}

	query := `
		SELECT id, tenant_id, name, email, phone, notes, status, position, extra_data, created_at, updated_at
		FROM leads
		WHERE id = ?
	`

	return scanLead(r.db.QueryRow(query, id))
}

// List retrieves a tenant's leads ordered by board position
func (r *leadRepository) List(tenantID string, limit, offset int) ([]*models.Lead, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant ID cannot be empty")
	}
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, tenant_id, name, email, phone, notes, status, position, extra_data, created_at, updated_at
		FROM leads
		WHERE tenant_id = ?
		ORDER BY status, position, created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.Query(query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leads: %w", err)
	}

	return leads, nil
}

// Update saves mutable lead fields
func (r *leadRepository) Update(lead *models.Lead) error {
	if lead == nil {
		return fmt.Errorf("lead cannot be nil")
	}

	lead.UpdatedAt = time.Now().Unix()

	extra, err := json.Marshal(lead.ExtraData)
	if err != nil {
		return fmt.Errorf("failed to encode extra data: %w", err)
	}

	query := `
		UPDATE leads
		SET name = ?, email = ?, phone = ?, notes = ?, status = ?, position = ?, extra_data = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Notes,
		lead.Status,
		lead.Position,
		string(extra),
		lead.UpdatedAt,
		lead.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("lead not found")
	}

	return nil
}

// Move updates only the board status and sort position of a lead
func (r *leadRepository) Move(id, status string, position float64) error {
	if id == "" {
		return fmt.Errorf("lead ID cannot be empty")
	}

	result, err := r.db.Exec(
		"UPDATE leads SET status = ?, position = ?, updated_at = ? WHERE id = ?",
		status, position, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to move lead: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check move result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("lead not found")
	}

	return nil
}

// Delete removes a lead
func (r *leadRepository) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("lead ID cannot be empty")
	}

	result, err := r.db.Exec("DELETE FROM leads WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("lead not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*models.Lead, error) {
	lead := &models.Lead{}
	var extra string

	err := row.Scan(
		&lead.ID,
		&lead.TenantID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Notes,
		&lead.Status,
		&lead.Position,
		&extra,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan lead: %w", err)
	}

	if extra != "" {
		if err := json.Unmarshal([]byte(extra), &lead.ExtraData); err != nil {
			return nil, fmt.Errorf("failed to decode extra data: %w", err)
		}
	}

	return lead, nil
}
