package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/awaissaddiqui/Flask-Server/internal/infrastructure/config"
)

// ServiceName is attached to every log entry
const ServiceName = "satisfaction-api"

// NewLogger creates a zap logger writing to stdout
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	return New(cfg, zapcore.Lock(os.Stdout)), nil
}

// New builds the logger on an arbitrary sink.
// Unknown levels fall back to info; any format other than "console" is JSON.
func New(cfg *config.LogConfig, sink zapcore.WriteSyncer) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.MillisDurationEncoder

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, sink, level)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", ServiceName))
}
