package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/DustinYates/cheatah-sub002/internal/config"
	"github.com/DustinYates/cheatah-sub002/internal/db"
	"github.com/DustinYates/cheatah-sub002/internal/models"
	"github.com/DustinYates/cheatah-sub002/pkg/logger"
	"github.com/DustinYates/cheatah-sub002/pkg/utils"

	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

const (
	// BcryptCost is the cost parameter for bcrypt password hashing
	BcryptCost = 12

	// MaxFailedLoginAttempts is the number of failed attempts before account lockout
	MaxFailedLoginAttempts = 5

	// LockoutDuration is the duration of account lockout after max failed attempts
	LockoutDuration = 30 * time.Minute

	// MinPasswordLength is the minimum length for passwords
	MinPasswordLength = 8
)

var (
	// ErrInvalidCredentials indicates authentication failure
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountLocked indicates the account is temporarily locked
	ErrAccountLocked = errors.New("account is locked due to too many failed login attempts")

	// ErrInvalidTOTP indicates TOTP code validation failure
	ErrInvalidTOTP = errors.New("invalid TOTP code")

	// ErrUserNotFound indicates user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUsername indicates username validation failure
	ErrInvalidUsername = errors.New("username must be 3-50 characters and contain only alphanumeric characters and underscores")

	// ErrInvalidEmail indicates email validation failure
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidPassword indicates password validation failure
	ErrInvalidPassword = errors.New("password must be at least 8 characters")

	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)
)

// UserService provides business logic for console operator accounts
type UserService struct {
	repo          db.UserRepository
	encryptionKey string
}

// NewUserService creates a new UserService instance
func NewUserService(repo db.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// NewUserServiceWithEncryption creates a UserService that encrypts TOTP
// secrets at rest
func NewUserServiceWithEncryption(repo db.UserRepository, cfg *config.Config) *UserService {
	return &UserService{
		repo:          repo,
		encryptionKey: cfg.Security.TOTPEncryptionKey,
	}
}

// CreateUser creates a new operator account with hashed password and validation
func (s *UserService) CreateUser(tenantID, username, email, password string) (*models.User, error) {
	if !usernameRegex.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if email != "" && !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, ErrInvalidPassword
	}

	existing, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, errors.New("username already exists")
	}

	if email != "" {
		existing, err = s.repo.GetByEmail(email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return nil, errors.New("email already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(tenantID, username, email, string(hash))
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser retrieves an operator account by ID
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Authenticate verifies credentials plus the TOTP code when 2FA is enabled.
// Failed attempts count toward lockout; a successful login resets the counter.
func (s *UserService) Authenticate(username, password, totpCode string) (*models.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.IsLocked() {
		return nil, ErrAccountLocked
	}
	if !user.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailedLogin(user)
		return nil, ErrInvalidCredentials
	}

	if user.TOTPEnabled {
		if err := s.verifyTOTP(user, totpCode); err != nil {
			s.recordFailedLogin(user)
			return nil, err
		}
	}

	now := time.Now().Unix()
	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLogin = &now
	if err := s.repo.Update(user); err != nil {
		logger.Warn("Failed to record successful login",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}

	return user, nil
}

// EnableTOTP generates a new TOTP secret for the user, stores it encrypted
// and returns the otpauth provisioning URL for enrollment
func (s *UserService) EnableTOTP(userID, issuer string) (string, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return "", err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: user.Username,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	secret := key.Secret()
	if s.encryptionKey != "" {
		secret, err = utils.EncryptSecret(secret, s.encryptionKey)
		if err != nil {
			return "", fmt.Errorf("failed to encrypt TOTP secret: %w", err)
		}
	}

	user.TOTPSecret = &secret
	user.TOTPEnabled = true
	if err := s.repo.Update(user); err != nil {
		return "", fmt.Errorf("failed to save TOTP secret: %w", err)
	}

	return key.URL(), nil
}

func (s *UserService) verifyTOTP(user *models.User, code string) error {
	if code == "" || user.TOTPSecret == nil {
		return ErrInvalidTOTP
	}

	secret := *user.TOTPSecret
	if s.encryptionKey != "" {
		decrypted, err := utils.DecryptSecret(secret, s.encryptionKey)
		if err != nil {
			return fmt.Errorf("failed to decrypt TOTP secret: %w", err)
		}
		secret = decrypted
	}

	if !totp.Validate(code, secret) {
		return ErrInvalidTOTP
	}
	return nil
}

func (s *UserService) recordFailedLogin(user *models.User) {
	user.FailedLoginAttempts++
	if user.FailedLoginAttempts >= MaxFailedLoginAttempts {
		lockedUntil := time.Now().Add(LockoutDuration).Unix()
		user.LockedUntil = &lockedUntil
		logger.Warn("Account locked after repeated failed logins",
			zap.String("user_id", user.ID),
			zap.Int("attempts", user.FailedLoginAttempts),
		)
	}

	if err := s.repo.Update(user); err != nil {
		logger.Warn("Failed to record failed login attempt",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}
}
