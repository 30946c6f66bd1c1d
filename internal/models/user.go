package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a console operator account with authentication capabilities
type User struct {
	ID                  string  `json:"id"`                                       // UUID
	TenantID            string  `json:"tenant_id"`                                // Tenant the operator belongs to
	Username            string  `json:"username" binding:"required,min=3,max=50"` // Unique username
	Email               string  `json:"email" binding:"required,email"`           // User email
	PasswordHash        string  `json:"-"`                                        // EXCLUDED from JSON - bcrypt hash
	TOTPSecret          *string `json:"-"`                                        // EXCLUDED from JSON - encrypted TOTP secret
	TOTPEnabled         bool    `json:"totp_enabled"`                             // Whether 2FA is enabled
	Active              bool    `json:"active"`                                   // Whether the account is active
	FailedLoginAttempts int     `json:"failed_login_attempts"`                    // Consecutive failed login attempts
	LockedUntil         *int64  `json:"locked_until,omitempty"`                   // Unix timestamp when account lock expires
	LastLogin           *int64  `json:"last_login,omitempty"`                     // Unix timestamp of last successful login
	CreatedAt           int64   `json:"created_at"`                               // Unix timestamp of account creation
	UpdatedAt           int64   `json:"updated_at"`                               // Unix timestamp of last update
}

// CreateUserRequest represents the request body for creating a new user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"` // Plain password - will be hashed
	TenantID string `json:"tenant_id"`
}

// LoginRequest represents the request body for authentication
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	TOTPCode string `json:"totp_code,omitempty"`
}

// UserResponse represents a safe user representation for API responses
type UserResponse struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Active      bool   `json:"active"`
	TOTPEnabled bool   `json:"totp_enabled"`
	LastLogin   *int64 `json:"last_login,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}

// NewUser creates a new User with generated UUID and timestamps
// The password should already be hashed before calling this function
func NewUser(tenantID, username, email, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsLocked returns whether the account is currently locked out
func (u *User) IsLocked() bool {
	if u.LockedUntil == nil {
		return false
	}
	return *u.LockedUntil > time.Now().Unix()
}

// IsActive returns whether the user account is active and not locked
func (u *User) IsActive() bool {
	if !u.Active {
		return false
	}
	return !u.IsLocked()
}

// ToResponse converts a User into its safe API representation
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		TenantID:    u.TenantID,
		Username:    u.Username,
		Email:       u.Email,
		Active:      u.Active,
		TOTPEnabled: u.TOTPEnabled,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}
