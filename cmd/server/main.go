package main

import (
	"os"

	"github.com/DustinYates/cheatah-sub002/internal/config"
	"github.com/DustinYates/cheatah-sub002/pkg/logger"

	"go.uber.org/zap"
)

const version = "0.1.0"

func main() {
	// Load configuration
	cfg := config.DefaultConfig()
	if path := os.Getenv("CONSOLE_CONFIG"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Path); err != nil {
		panic(err)
	}
	defer logger.Info("Server shutting down")

	// Setup and start server
	srv, err := SetupServer(cfg)
	if err != nil {
		logger.Fatal("Failed to setup server", zap.Error(err))
	}

	if err := StartServer(srv); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
