// Package config provides JWT configuration functionality.
package config

import (
	"fmt"
	"os"
	"time"
)

// JWTConfig holds configuration for session token generation and validation.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_TTL as a Go duration string
// (default: 24h).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	ttlStr := os.Getenv("JWT_TTL")
	if ttlStr == "" {
		ttlStr = "24h"
	}

	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %v", err)
	}

	config := &JWTConfig{
		Secret: secret,
		TTL:    ttl,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *JWTConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.TTL < time.Minute {
		return fmt.Errorf("JWT_TTL must be at least 1 minute, got: %s", c.TTL)
	}
	return nil
}
