package services

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/DustinYates/cheatah-sub002/internal/models"
)

type mockUserRepo struct {
	users map[string]*models.User // keyed by username
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	return m.users[username], nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Update(user *models.User) error {
	m.users[user.Username] = user
	return nil
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	// Low cost keeps the test fast
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	return string(hash)
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "valid user",
			username: "jane_doe",
			email:    "jane@example.com",
			password: "password123",
		},
		{
			name:     "username too short",
			username: "ab",
			email:    "jane@example.com",
			password: "password123",
			wantErr:  ErrInvalidUsername,
		},
		{
			name:     "username with invalid characters",
			username: "jane doe!",
			email:    "jane@example.com",
			password: "password123",
			wantErr:  ErrInvalidUsername,
		},
		{
			name:     "bad email",
			username: "jane_doe",
			email:    "not-an-email",
			password: "password123",
			wantErr:  ErrInvalidEmail,
		},
		{
			name:     "short password",
			username: "jane_doe",
			email:    "jane@example.com",
			password: "short",
			wantErr:  ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewUserService(newMockUserRepo())

			user, err := service.CreateUser("tenant-1", tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateUser() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateUser() error = %v", err)
			}
			if user.PasswordHash == tt.password {
				t.Error("CreateUser() must not store the plain password")
			}
			if !user.Active {
				t.Error("new users should start active")
			}
		})
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	if _, err := service.CreateUser("tenant-1", "jane_doe", "a@example.com", "password123"); err != nil {
		t.Fatalf("first CreateUser() error = %v", err)
	}
	if _, err := service.CreateUser("tenant-1", "jane_doe", "b@example.com", "password123"); err == nil {
		t.Error("CreateUser() should reject duplicate usernames")
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newMockUserRepo()
	user := models.NewUser("tenant-1", "jane_doe", "jane@example.com", hashPassword(t, "password123"))
	repo.users[user.Username] = user

	service := NewUserService(repo)

	got, err := service.Authenticate("jane_doe", "password123", "")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if got.LastLogin == nil {
		t.Error("Authenticate() should record last login")
	}
	if got.FailedLoginAttempts != 0 {
		t.Error("Authenticate() should reset the failure counter")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	user := models.NewUser("tenant-1", "jane_doe", "jane@example.com", hashPassword(t, "password123"))
	repo.users[user.Username] = user

	service := NewUserService(repo)

	if _, err := service.Authenticate("jane_doe", "wrong", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Authenticate() error = %v, want ErrInvalidCredentials", err)
	}
	if user.FailedLoginAttempts != 1 {
		t.Errorf("failed attempts = %d, want 1", user.FailedLoginAttempts)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	service := NewUserService(newMockUserRepo())

	if _, err := service.Authenticate("ghost", "whatever", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateLockout(t *testing.T) {
	repo := newMockUserRepo()
	user := models.NewUser("tenant-1", "jane_doe", "jane@example.com", hashPassword(t, "password123"))
	repo.users[user.Username] = user

	service := NewUserService(repo)

	for i := 0; i < MaxFailedLoginAttempts; i++ {
		if _, err := service.Authenticate("jane_doe", "wrong", ""); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: error = %v, want ErrInvalidCredentials", i, err)
		}
	}

	if _, err := service.Authenticate("jane_doe", "password123", ""); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("Authenticate() after lockout error = %v, want ErrAccountLocked", err)
	}
}

func TestAuthenticateLockExpires(t *testing.T) {
	repo := newMockUserRepo()
	user := models.NewUser("tenant-1", "jane_doe", "jane@example.com", hashPassword(t, "password123"))
	expired := time.Now().Add(-time.Minute).Unix()
	user.LockedUntil = &expired
	user.FailedLoginAttempts = MaxFailedLoginAttempts
	repo.users[user.Username] = user

	service := NewUserService(repo)

	if _, err := service.Authenticate("jane_doe", "password123", ""); err != nil {
		t.Errorf("Authenticate() with expired lock error = %v, want success", err)
	}
}

func TestAuthenticateInactiveUser(t *testing.T) {
	repo := newMockUserRepo()
	user := models.NewUser("tenant-1", "jane_doe", "jane@example.com", hashPassword(t, "password123"))
	user.Active = false
	repo.users[user.Username] = user

	service := NewUserService(repo)

	if _, err := service.Authenticate("jane_doe", "password123", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Authenticate() for inactive user error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateTOTPMissingCode(t *testing.T) {
	repo := newMockUserRepo()
	user := models.NewUser("tenant-1", "jane_doe", "jane@example.com", hashPassword(t, "password123"))
	secret := "JBSWY3DPEHPK3PXP"
	user.TOTPSecret = &secret
	user.TOTPEnabled = true
	repo.users[user.Username] = user

	service := NewUserService(repo)

	if _, err := service.Authenticate("jane_doe", "password123", ""); !errors.Is(err, ErrInvalidTOTP) {
		t.Errorf("Authenticate() without TOTP code error = %v, want ErrInvalidTOTP", err)
	}
}

func TestEnableTOTP(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	user, err := service.CreateUser("tenant-1", "jane_doe", "jane@example.com", "password123")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	url, err := service.EnableTOTP(user.ID, "cheatah-console")
	if err != nil {
		t.Fatalf("EnableTOTP() error = %v", err)
	}
	if url == "" {
		t.Error("EnableTOTP() should return a provisioning URL")
	}

	stored := repo.users["jane_doe"]
	if !stored.TOTPEnabled || stored.TOTPSecret == nil || *stored.TOTPSecret == "" {
		t.Error("EnableTOTP() should persist the secret and enable the flag")
	}
}

func TestGetUserNotFound(t *testing.T) {
	service := NewUserService(newMockUserRepo())

	if _, err := service.GetUser("missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUser() error = %v, want ErrUserNotFound", err)
	}
}
