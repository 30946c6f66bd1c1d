package models

// PromptSettings is the per-tenant chatbot prompt configuration edited in the
// console's settings screen.
type PromptSettings struct {
	TenantID        string   `json:"tenant_id"`
	SystemPrompt    string   `json:"system_prompt"`
	Greeting        string   `json:"greeting"`
	Temperature     float64  `json:"temperature"`
	HandoffKeywords []string `json:"handoff_keywords,omitempty"`
	UpdatedAt       int64    `json:"updated_at"`
}

// UpdatePromptSettingsRequest represents the request body for the settings editor
type UpdatePromptSettingsRequest struct {
	SystemPrompt    *string  `json:"system_prompt,omitempty"`
	Greeting        *string  `json:"greeting,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	HandoffKeywords []string `json:"handoff_keywords,omitempty"`
}

// DefaultPromptSettings returns the configuration a tenant starts with before
// anything has been saved
func DefaultPromptSettings(tenantID string) *PromptSettings {
	return &PromptSettings{
		TenantID:     tenantID,
		SystemPrompt: "You are a helpful assistant for this business. Answer questions about services, hours, and pricing.",
		Greeting:     "Hi! How can I help you today?",
		Temperature:  0.7,
	}
}
