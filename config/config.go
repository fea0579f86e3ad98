package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Backend  BackendConfig  `mapstructure:"backend"`
	Firebase FirebaseConfig `mapstructure:"firebase"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Session  SessionConfig  `mapstructure:"session"`
	Log      LogConfig      `mapstructure:"log"`
}

type BackendConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// StoreUploadTimeout bounds the store creation upload, the one call
	// that ships a file large enough to need its own deadline.
	StoreUploadTimeout time.Duration `mapstructure:"store_upload_timeout"`
}

type FirebaseConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type PaymentConfig struct {
	// Host and Port must match the return URLs registered with the
	// payment gateway, or the redirect back never lands here.
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type SessionConfig struct {
	File string `mapstructure:"file"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads .env, then the optional config file, then SHM_* environment
// variables, in increasing precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SHM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	home, _ := os.UserHomeDir()
	v.SetDefault("backend.base_url", "http://127.0.0.1:8000/")
	v.SetDefault("backend.store_upload_timeout", time.Minute)
	v.SetDefault("payment.host", "127.0.0.1")
	v.SetDefault("payment.port", 3000)
	v.SetDefault("session.file", filepath.Join(home, ".secondhandmarket", "session.json"))
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".secondhandmarket"))
	}
	if err := v.ReadInConfig(); err != nil {
		// A missing file on the search path is fine; a file that exists
		// but does not parse is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend.base_url must be set")
	}
	return &cfg, nil
}

// NewLogger builds the process logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
