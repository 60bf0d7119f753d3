package config_test

import (
	"testing"
	"time"

	"github.com/nguyentranbao-ct/catalog-console/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "local", cfg.Env)
		assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
		assert.Equal(t, "http://127.0.0.1:8001/products", cfg.Products.BaseURL)
		assert.Equal(t, 60*time.Second, cfg.Products.Timeout)
		assert.Equal(t, 2*time.Second, cfg.Display.PollInterval)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ENV", "production")
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("PRODUCTS_BASE_URL", "http://catalog:8001/products")
		t.Setenv("PRODUCTS_TIMEOUT", "5s")
		t.Setenv("DISPLAY_POLL_INTERVAL", "250ms")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
		assert.Equal(t, "http://catalog:8001/products", cfg.Products.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Products.Timeout)
		assert.Equal(t, 250*time.Millisecond, cfg.Display.PollInterval)
	})

	t.Run("error - invalid base url", func(t *testing.T) {
		t.Setenv("PRODUCTS_BASE_URL", "not a url")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("error - bad duration", func(t *testing.T) {
		t.Setenv("DISPLAY_POLL_INTERVAL", "soon")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("error - unknown env", func(t *testing.T) {
		t.Setenv("ENV", "staging")

		assert.Panics(t, func() { config.MustLoad() })
	})
}
