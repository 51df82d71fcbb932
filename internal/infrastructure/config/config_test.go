package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Check server defaults
		assert.Equal(t, "", cfg.Server.Host)
		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, "8.8.8.8:80", cfg.Server.ProbeAddr)
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
		assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)

		// Check model defaults
		assert.Equal(t, "course_rating_model.h5", cfg.Model.Path)

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		t.Setenv("SATISFACTION_SERVER_PORT", "9090")
		t.Setenv("SATISFACTION_SERVER_HOST", "127.0.0.1")
		t.Setenv("SATISFACTION_MODEL_PATH", "/models/rating.json")
		t.Setenv("SATISFACTION_LOG_LEVEL", "debug")
		t.Setenv("SATISFACTION_SERVER_SHUTDOWN_TIMEOUT", "5s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "127.0.0.1", cfg.Server.Host)
		assert.Equal(t, "/models/rating.json", cfg.Model.Path)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	})

	t.Run("rejects out of range port", func(t *testing.T) {
		t.Setenv("SATISFACTION_SERVER_PORT", "70000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("accepts gin modes", func(t *testing.T) {
		for _, mode := range []string{"debug", "release", "test"} {
			t.Setenv("SATISFACTION_SERVER_MODE", mode)

			cfg, err := Load()

			require.NoError(t, err)
			assert.Equal(t, mode, cfg.Server.Mode)
		}
	})

	t.Run("rejects unknown server mode", func(t *testing.T) {
		t.Setenv("SATISFACTION_SERVER_MODE", "production")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server mode")
		assert.Nil(t, cfg)
	})
}
