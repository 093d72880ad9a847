// Package config loads server settings from an optional config file and
// the environment. Environment variables win over file values.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store backends selectable via STORE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds everything api/main.go needs to wire the server.
type Config struct {
	Addr         string `mapstructure:"addr"`
	StoreBackend string `mapstructure:"store_backend"`
	DatabaseURL  string `mapstructure:"database_url"`
	RedisAddr    string `mapstructure:"redis_addr"`
	JWTSecret    string `mapstructure:"jwt_secret"`
}

// Load reads config.yaml from the working directory (if present) and the
// environment, then validates backend-specific requirements.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("addr", ":8080")
	v.SetDefault("store_backend", BackendPostgres)
	// Registering a default makes AutomaticEnv visible to Unmarshal.
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("jwt_secret", "dev-secret-change-me")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	switch cfg.StoreBackend {
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required with the postgres backend")
		}
	case BackendRedis, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	return cfg, nil
}
