package services

import (
	"errors"
	"fmt"

	"github.com/DustinYates/cheatah-sub002/internal/db"
	"github.com/DustinYates/cheatah-sub002/internal/models"
)

const (
	// MaxPromptLength caps the stored system prompt
	MaxPromptLength = 8000

	// MaxGreetingLength caps the stored greeting
	MaxGreetingLength = 500
)

var (
	// ErrInvalidTemperature indicates a temperature outside the model's range
	ErrInvalidTemperature = errors.New("temperature must be between 0 and 2")

	// ErrPromptTooLong indicates the system prompt exceeds the stored limit
	ErrPromptTooLong = errors.New("system prompt is too long")

	// ErrGreetingTooLong indicates the greeting exceeds the stored limit
	ErrGreetingTooLong = errors.New("greeting is too long")
)

// SettingsService provides business logic for the chatbot prompt editor
type SettingsService struct {
	repo db.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo db.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetSettings retrieves a tenant's prompt settings, falling back to defaults
// before anything has been saved
func (s *SettingsService) GetSettings(tenantID string) (*models.PromptSettings, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant ID is required")
	}

	settings, err := s.repo.Get(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings == nil {
		return models.DefaultPromptSettings(tenantID), nil
	}

	return settings, nil
}

// UpdateSettings validates and saves the fields the editor changed
func (s *SettingsService) UpdateSettings(tenantID string, req *models.UpdatePromptSettingsRequest) (*models.PromptSettings, error) {
	if req == nil {
		return nil, fmt.Errorf("update request is required")
	}

	settings, err := s.GetSettings(tenantID)
	if err != nil {
		return nil, err
	}

	if req.SystemPrompt != nil {
		if len(*req.SystemPrompt) > MaxPromptLength {
			return nil, ErrPromptTooLong
		}
		settings.SystemPrompt = *req.SystemPrompt
	}
	if req.Greeting != nil {
		if len(*req.Greeting) > MaxGreetingLength {
			return nil, ErrGreetingTooLong
		}
		settings.Greeting = *req.Greeting
	}
	if req.Temperature != nil {
		if *req.Temperature < 0 || *req.Temperature > 2 {
			return nil, ErrInvalidTemperature
		}
		settings.Temperature = *req.Temperature
	}
	if req.HandoffKeywords != nil {
		settings.HandoffKeywords = req.HandoffKeywords
	}

	if err := s.repo.Upsert(settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return settings, nil
}
