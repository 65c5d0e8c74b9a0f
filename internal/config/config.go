// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const developmentJWTSecret = "dev-only-secret-change-me"

// Config holds everything cmd/server needs to start.
type Config struct {
	SpannerDatabase string
	HTTPPort        int
	GRPCPort        int
	LogLevel        string
	JWTSecret       string
	SessionTTL      time.Duration
	UploadDir       string
	Env             string
}

// IsDevelopment reports whether the service runs with development defaults.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads the environment, applying defaults for anything unset.
func Load() (Config, error) {
	cfg := Config{
		SpannerDatabase: GetEnvOrDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/store-admin-db"),
		LogLevel:        GetEnvOrDefault("LOG_LEVEL", "info"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		UploadDir:       GetEnvOrDefault("UPLOAD_DIR", "public/uploads"),
		Env:             GetEnvOrDefault("APP_ENV", "development"),
	}

	var err error
	if cfg.HTTPPort, err = intEnv("HTTP_PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.GRPCPort, err = intEnv("GRPC_PORT", 9090); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = time.ParseDuration(GetEnvOrDefault("SESSION_TTL", "24h")); err != nil {
		return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return Config{}, errors.New("JWT_SECRET must be set outside development")
		}
		cfg.JWTSecret = developmentJWTSecret
	}

	return cfg, nil
}

// GetEnvOrDefault returns the variable's value, or defaultValue when unset or empty.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
