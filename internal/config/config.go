// Package config provides environment-based configuration for the DocKit
// server and CLI.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the settings the HTTP server needs at startup.
// All values come from environment variables; godotenv loads a .env file
// before this runs when one is present.
type ServerConfig struct {
	Port        int
	DatabaseURL string
	BaseURL     string
	DocLimit    int
}

// NewServerConfig reads server configuration from the environment.
// PORT defaults to 8787 and DOC_LIMIT to 15; DATABASE_URL is required.
func NewServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:     8787,
		DocLimit: 15,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	if limitStr := os.Getenv("DOC_LIMIT"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid DOC_LIMIT: %v", err)
		}
		cfg.DocLimit = limit
	}

	cfg.BaseURL = os.Getenv("BASE_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DocLimit < 1 {
		return fmt.Errorf("DOC_LIMIT must be at least 1, got: %d", c.DocLimit)
	}
	return nil
}
