package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-minimum-32-bytes")
	t.Setenv("JWT_TTL", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.TTL)

	t.Setenv("JWT_TTL", "90m")
	cfg, err = NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, cfg.TTL)
}

func TestNewJWTConfig_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_TTL", "soon")
	_, err = NewJWTConfig()
	assert.Error(t, err)

	t.Setenv("JWT_TTL", "30s")
	_, err = NewJWTConfig()
	assert.Error(t, err, "TTL below one minute is rejected")
}
