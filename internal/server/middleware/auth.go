// Package middleware provides HTTP middleware for authentication.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// accountIDKey is the context key for storing the authenticated account ID.
const accountIDKey ContextKey = "accountID"

// APIKeyPrefix marks DocKit API keys. Bearer credentials carrying the
// prefix are resolved as API keys; anything else is treated as a session
// token.
const APIKeyPrefix = "dk_live_"

// CredentialResolver resolves either credential form to an account ID.
// Implemented by the server so the middleware has no dependency on the
// database or JWT packages.
type CredentialResolver interface {
	ResolveAPIKey(ctx context.Context, apiKey string) (uuid.UUID, error)
	ResolveToken(token string) (uuid.UUID, error)
}

// Auth creates middleware that authenticates requests and stores the
// account ID in the request context. Credentials are taken from the
// X-API-Key header or an Authorization: Bearer header, which may carry
// either an API key or a session token.
func Auth(resolver CredentialResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := r.Header.Get("X-API-Key")
			if credential == "" {
				credential = bearerToken(r.Header.Get("Authorization"))
			}
			if credential == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			var accountID uuid.UUID
			var err error
			if strings.HasPrefix(credential, APIKeyPrefix) {
				accountID, err = resolver.ResolveAPIKey(r.Context(), credential)
			} else {
				accountID, err = resolver.ResolveToken(credential)
			}
			if err != nil || accountID == uuid.Nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, accountID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an Authorization header, tolerating a
// case-insensitive "Bearer" prefix. Returns "" when the header is absent or
// malformed.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// AccountID returns the authenticated account ID from the request context.
func AccountID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)
	return id, ok
}

// WithAccountID returns a context carrying the account ID. Exposed for
// handler tests.
func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, accountIDKey, id)
}
