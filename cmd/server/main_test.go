package main

import (
	"context"
	"testing"
	"time"

	"github.com/DustinYates/cheatah-sub002/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestMainStartupAndShutdown(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.Port = 8081 // Use different port for testing
	cfg.Database.DSN = "file:startup-test.db?mode=memory&cache=shared"

	t.Run("TestServerStartup", func(t *testing.T) {
		srv, err := SetupServer(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, srv)

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		go func() {
			_ = StartServerWithContext(ctx, srv)
		}()

		// Wait for server to start
		time.Sleep(100 * time.Millisecond)

		assert.Equal(t, ":8081", srv.Addr)
	})

	t.Run("TestConfigLoading", func(t *testing.T) {
		cfg := config.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, 8080, cfg.Server.Port)
	})

	t.Run("TestServerSetupWithInvalidConfig", func(t *testing.T) {
		srv, err := SetupServer(nil)
		assert.Error(t, err)
		assert.Nil(t, srv)

		invalidCfg := config.DefaultConfig()
		invalidCfg.Server.Port = 0
		srv, err = SetupServer(invalidCfg)
		assert.Error(t, err)
		assert.Nil(t, srv)
	})
}
