package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DustinYates/cheatah-sub002/internal/config"
	"github.com/DustinYates/cheatah-sub002/internal/db"
	"github.com/DustinYates/cheatah-sub002/internal/handlers"
	"github.com/DustinYates/cheatah-sub002/internal/services"
	"github.com/DustinYates/cheatah-sub002/pkg/logger"
	"github.com/DustinYates/cheatah-sub002/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxRequestBodySize = 1 << 20 // 1 MiB

// SetupServer initializes and returns a configured HTTP server
func SetupServer(cfg *config.Config) (*http.Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	if cfg.Server.Port <= 0 {
		return nil, errors.New("invalid server port")
	}

	// Initialize database
	database, err := db.NewDatabase(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories
	leadRepo := db.NewLeadRepository(database.GetDB())
	convRepo := db.NewConversationRepository(database.GetDB())
	userRepo := db.NewUserRepository(database.GetDB())
	settingsRepo := db.NewSettingsRepository(database.GetDB())

	// Initialize services
	leadService := services.NewLeadService(leadRepo)
	timelineService := services.NewTimelineService(leadRepo, convRepo)
	userService := services.NewUserServiceWithEncryption(userRepo, cfg)
	settingsService := services.NewSettingsService(settingsRepo)

	// Initialize router
	router := gin.Default()

	// Setup routes
	setupRoutes(router, cfg, leadService, timelineService, userService, settingsService)

	// Create server with security timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return srv, nil
}

// setupRoutes configures all the HTTP routes
func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	leadService *services.LeadService,
	timelineService *services.TimelineService,
	userService *services.UserService,
	settingsService *services.SettingsService,
) {
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestSizeLimitMiddleware(maxRequestBodySize))
	router.Use(middleware.AuditLogMiddleware())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	leadHandler := handlers.NewLeadHandler(leadService)
	timelineHandler := handlers.NewTimelineHandler(timelineService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Basic health check endpoint (public)
	router.GET("/health", handleHealthCheck)

	// Auth endpoints (public)
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// User registration endpoint (public)
	usersGroup := router.Group("/api/users")
	{
		usersGroup.POST("", userHandler.Register)
	}

	// Protected routes group
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg))
	{
		protected.GET("/users/:id", userHandler.GetUserByID)
		protected.POST("/users/:id/totp", userHandler.EnableTOTP)

		protected.POST("/leads", leadHandler.CreateLead)
		protected.GET("/leads", leadHandler.ListLeads)
		protected.GET("/leads/:id", leadHandler.GetLead)
		protected.PUT("/leads/:id", leadHandler.UpdateLead)
		protected.PATCH("/leads/:id/move", leadHandler.MoveLead)
		protected.DELETE("/leads/:id", leadHandler.DeleteLead)

		protected.GET("/leads/:id/timeline", timelineHandler.GetTimeline)

		protected.GET("/settings/prompt", settingsHandler.GetPromptSettings)
		protected.PUT("/settings/prompt", settingsHandler.UpdatePromptSettings)
	}
}

// handleHealthCheck handles the health check endpoint
func handleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC(),
		"version": version,
		"service": "cheatah-console",
	})
}

// StartServer starts the HTTP server and handles graceful shutdown
func StartServer(srv *http.Server) error {
	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

// StartServerWithContext starts the HTTP server with a context for shutdown control
func StartServerWithContext(ctx context.Context, srv *http.Server) error {
	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	logger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
