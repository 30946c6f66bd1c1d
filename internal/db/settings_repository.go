package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DustinYates/cheatah-sub002/internal/models"
)

// SettingsRepository defines the interface for prompt settings data access
type SettingsRepository interface {
	Get(tenantID string) (*models.PromptSettings, error)
	Upsert(settings *models.PromptSettings) error
}

// settingsRepository implements SettingsRepository over SQLite
type settingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves a tenant's prompt settings, returning nil when nothing has
// been saved yet
func (r *settingsRepository) Get(tenantID string) (*models.PromptSettings, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant ID cannot be empty")
	}

	query := `
		SELECT tenant_id, system_prompt, greeting, temperature, handoff_keywords, updated_at
		FROM prompt_settings
		WHERE tenant_id = ?
	`

	settings := &models.PromptSettings{}
	var keywords string
	err := r.db.QueryRow(query, tenantID).Scan(
		&settings.TenantID,
		&settings.SystemPrompt,
		&settings.Greeting,
		&settings.Temperature,
		&keywords,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt settings: %w", err)
	}

	if keywords != "" {
		if err := json.Unmarshal([]byte(keywords), &settings.HandoffKeywords); err != nil {
			return nil, fmt.Errorf("failed to decode handoff keywords: %w", err)
		}
	}

	return settings, nil
}

// Upsert saves a tenant's prompt settings, creating the row on first save
func (r *settingsRepository) Upsert(settings *models.PromptSettings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if settings.TenantID == "" {
		return fmt.Errorf("tenant ID cannot be empty")
	}

	settings.UpdatedAt = time.Now().Unix()

	keywords, err := json.Marshal(settings.HandoffKeywords)
	if err != nil {
		return fmt.Errorf("failed to encode handoff keywords: %w", err)
	}

	query := `
		INSERT INTO prompt_settings (tenant_id, system_prompt, greeting, temperature, handoff_keywords, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(tenant_id) DO UPDATE SET
			system_prompt = excluded.system_prompt,
			greeting = excluded.greeting,
			temperature = excluded.temperature,
			handoff_keywords = excluded.handoff_keywords,
			updated_at = excluded.updated_at
	`

	_, err = r.db.Exec(query,
		settings.TenantID,
		settings.SystemPrompt,
		settings.Greeting,
		settings.Temperature,
		string(keywords),
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save prompt settings: %w", err)
	}

	return nil
}
