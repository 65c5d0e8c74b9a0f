package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SPANNER_DATABASE", "HTTP_PORT", "GRPC_PORT", "LOG_LEVEL", "JWT_SECRET", "SESSION_TTL", "UPLOAD_DIR", "APP_ENV"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "public/uploads", cfg.UploadDir)
	assert.True(t, cfg.IsDevelopment())
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.HTTPPort)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_RequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsBadPort(t *testing.T) {
	t.Setenv("GRPC_PORT", "ninety")

	_, err := Load()
	assert.Error(t, err)
}
