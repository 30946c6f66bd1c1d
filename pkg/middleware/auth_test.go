package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DustinYates/cheatah-sub002/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.JWT.Secret = "test_secret"
	cfg.JWT.TokenExpiry = time.Hour * 24
	return cfg
}

func generateExpiredToken(cfg *config.Config) string {
	claims := &Claims{
		UserID:   "user-1",
		TenantID: "tenant-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(cfg.JWT.Secret))
	return signed
}

func generateTokenWithoutTenant(cfg *config.Config) string {
	claims := &Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := token.SignedString([]byte(cfg.JWT.Secret))
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	validToken, err := GenerateToken("user-1", "tenant-1", cfg)
	assert.NoError(t, err)
	expiredToken := generateExpiredToken(cfg)
	noTenantToken := generateTokenWithoutTenant(cfg)

	testCases := []struct {
		name           string
		token          string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing token",
			token:          "",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Authorization header is required",
		},
		{
			name:           "invalid token",
			token:          "invalid",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:           "malformed bearer token",
			token:          "Bearer not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:           "expired token",
			token:          "Bearer " + expiredToken,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Token has expired",
		},
		{
			name:           "missing tenant ID",
			token:          "Bearer " + noTenantToken,
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid token",
		},
		{
			name:           "valid token",
			token:          "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectedError:  "",
		},
	}

	router := gin.New()
	router.Use(AuthMiddleware(cfg))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString("userID"),
			"tenantID": c.GetString("tenantID"),
		})
	})

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", "/test", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", tc.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedError != "" {
				var body map[string]string
				err := json.Unmarshal(w.Body.Bytes(), &body)
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedError, body["error"])
			}
		})
	}
}

func TestAuthMiddlewareSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	token, err := GenerateToken("user-42", "tenant-7", cfg)
	assert.NoError(t, err)

	router := gin.New()
	router.Use(AuthMiddleware(cfg))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString("userID"),
			"tenantID": TenantFromContext(c),
		})
	})

	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "user-42", body["userID"])
	assert.Equal(t, "tenant-7", body["tenantID"])
}

func TestGenerateToken(t *testing.T) {
	cfg := testConfig()

	testCases := []struct {
		name     string
		userID   string
		tenantID string
		cfg      *config.Config
		wantErr  bool
	}{
		{"valid", "user-1", "tenant-1", cfg, false},
		{"missing user ID", "", "tenant-1", cfg, true},
		{"missing tenant ID", "user-1", "", cfg, true},
		{"nil config", "user-1", "tenant-1", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := GenerateToken(tc.userID, tc.tenantID, tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.Secret = ""

	token, err := GenerateToken("user-1", "tenant-1", cfg)
	assert.Error(t, err)
	assert.Empty(t, token)
}
