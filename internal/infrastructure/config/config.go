package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SATISFACTION_SERVER_PORT.
const EnvPrefix = "SATISFACTION"

// Config holds all application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Model  ModelConfig  `mapstructure:"model"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Host is the bind address. Empty means discover the outbound-facing local IP.
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ProbeAddr       string        `mapstructure:"probe_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ModelConfig holds classifier model configuration
type ModelConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional .env file and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid server mode %q, want debug, release or test", cfg.Server.Mode)
	}
	if cfg.Model.Path == "" {
		return nil, errors.New("model path must not be empty")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.probe_addr", "8.8.8.8:80")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("model.path", "course_rating_model.h5")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
