package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/awaissaddiqui/Flask-Server/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LogConfig
		enabled  zapcore.Level
		disabled zapcore.Level
	}{
		{
			name:     "json format at info",
			cfg:      config.LogConfig{Level: "info", Format: "json"},
			enabled:  zapcore.InfoLevel,
			disabled: zapcore.DebugLevel,
		},
		{
			name:     "invalid level defaults to info",
			cfg:      config.LogConfig{Level: "invalid", Format: "json"},
			enabled:  zapcore.InfoLevel,
			disabled: zapcore.DebugLevel,
		},
		{
			name:     "error level",
			cfg:      config.LogConfig{Level: "error", Format: "json"},
			enabled:  zapcore.ErrorLevel,
			disabled: zapcore.WarnLevel,
		},
		{
			name:     "warn level with console",
			cfg:      config.LogConfig{Level: "warn", Format: "console"},
			enabled:  zapcore.WarnLevel,
			disabled: zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger(&tt.cfg)

			assert.NoError(t, err)
			assert.NotNil(t, log)
			assert.True(t, log.Core().Enabled(tt.enabled))
			assert.False(t, log.Core().Enabled(tt.disabled))
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.LogConfig{Level: "debug", Format: "json"}, zapcore.AddSync(&buf))

	log.Info("Model loaded", zap.Int("classes", 3))
	require.NoError(t, log.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Model loaded", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, ServiceName, entry["service"])
	assert.Equal(t, float64(3), entry["classes"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "caller")
}

func TestNew_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&config.LogConfig{Level: "info", Format: "console"}, zapcore.AddSync(&buf))

	log.Warn("Failed to discover local IP")
	log.Debug("suppressed")

	assert.Contains(t, buf.String(), "Failed to discover local IP")
	assert.NotContains(t, buf.String(), "suppressed")
}
