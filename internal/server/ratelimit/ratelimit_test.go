package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(limit, burst int) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  limit,
		DefaultWindow: time.Minute,
		Exempt:        map[string]bool{},
		EndpointConfigs: []EndpointConfig{
			{Path: "/v1/documents", Method: "POST", Limit: limit, Window: time.Minute, Burst: burst},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig(60, 3))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/v1/documents", "POST")
		assert.True(t, allowed, "request %d within burst", i+1)
	}

	allowed, info := l.Allow("1.2.3.4", "/v1/documents", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 60, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig(60, 1))
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/v1/documents", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/v1/documents", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/v1/documents", "POST")
	assert.True(t, allowed, "a second client has its own bucket")
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/v1/documents", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_ExemptClient(t *testing.T) {
	cfg := testConfig(60, 1)
	cfg.Exempt["9.9.9.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/v1/documents", "POST")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	ec := MatchEndpoint("/v1/auth/signup", "POST", configs)
	require.NotNil(t, ec)
	assert.Equal(t, 10, ec.Limit)

	ec = MatchEndpoint("/v1/documents/abc-123", "PATCH", configs)
	require.NotNil(t, ec)
	assert.Equal(t, 60, ec.Limit)

	assert.Nil(t, MatchEndpoint("/v1/documents", "GET", configs), "reads use the default limit")

	ec = MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, ec)
	assert.Equal(t, 0, ec.Limit, "health check is unlimited")

	ec = MatchEndpoint("/d/abc-123", "GET", configs)
	require.NotNil(t, ec)
	assert.Equal(t, 0, ec.Limit, "public viewer is unlimited")
}
