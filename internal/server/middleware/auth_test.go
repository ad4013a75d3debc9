package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubResolver struct {
	apiKey  string
	token   string
	account uuid.UUID
}

func (s *stubResolver) ResolveAPIKey(_ context.Context, apiKey string) (uuid.UUID, error) {
	if apiKey == s.apiKey {
		return s.account, nil
	}
	return uuid.Nil, fmt.Errorf("unknown api key")
}

func (s *stubResolver) ResolveToken(token string) (uuid.UUID, error) {
	if token == s.token {
		return s.account, nil
	}
	return uuid.Nil, fmt.Errorf("invalid token")
}

func runAuth(t *testing.T, resolver CredentialResolver, setup func(*http.Request)) (*httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	var seen uuid.UUID
	handler := Auth(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = AccountID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/documents", nil)
	setup(req)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w, seen
}

func TestAuth_APIKeyHeader(t *testing.T) {
	account := uuid.New()
	resolver := &stubResolver{apiKey: "dk_live_abc", token: "jwt-token", account: account}

	w, seen := runAuth(t, resolver, func(r *http.Request) {
		r.Header.Set("X-API-Key", "dk_live_abc")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, account, seen)
}

func TestAuth_BearerAPIKey(t *testing.T) {
	account := uuid.New()
	resolver := &stubResolver{apiKey: "dk_live_abc", account: account}

	w, seen := runAuth(t, resolver, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer dk_live_abc")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, account, seen)
}

func TestAuth_BearerSessionToken(t *testing.T) {
	account := uuid.New()
	resolver := &stubResolver{token: "session-jwt", account: account}

	w, seen := runAuth(t, resolver, func(r *http.Request) {
		r.Header.Set("Authorization", "bearer session-jwt")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, account, seen)
}

func TestAuth_Rejections(t *testing.T) {
	resolver := &stubResolver{apiKey: "dk_live_abc", token: "good", account: uuid.New()}

	tests := []struct {
		name  string
		setup func(*http.Request)
	}{
		{"no credentials", func(r *http.Request) {}},
		{"wrong api key", func(r *http.Request) { r.Header.Set("X-API-Key", "dk_live_nope") }},
		{"wrong token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad") }},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "dk_live_abc") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := runAuth(t, resolver, tt.setup)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
